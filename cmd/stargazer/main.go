// Command stargazer writes a Markdown index of a GitHub account's stars.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/stargazer/internal/adapters/driven/auth"
	"github.com/custodia-labs/stargazer/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/stargazer/internal/adapters/driving/cli"
	"github.com/custodia-labs/stargazer/internal/connectors/github"
	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/core/ports/driving"
	"github.com/custodia-labs/stargazer/internal/core/services"
	"github.com/custodia-labs/stargazer/internal/logger"
)

// Set with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = ""
)

func main() {
	cli.SetBuildInfo(version, commit)
	cli.SetGeneratorFactory(newGenerator)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Root().ExecuteContext(ctx)
	stop()

	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// newGenerator wires the GitHub connector and local files into the service.
func newGenerator(cfg domain.Config) (driving.Generator, error) {
	conn := github.New(github.OptionsFromConfig(cfg), auth.ForToken(cfg.Token))

	return services.NewGenerateService(
		cfg,
		conn,
		conn,
		conn,
		filesystem.NewSnapshotStore(cfg.SnapshotPath),
		filesystem.NewDocumentStore(),
	), nil
}
