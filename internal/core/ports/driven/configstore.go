package driven

import "github.com/custodia-labs/stargazer/internal/core/domain"

// ConfigSource is one layer of configuration, such as a TOML file or the
// process environment. Sources are applied in order, later ones winning.
type ConfigSource interface {
	// Apply overrides the fields of cfg this source sets.
	// Fields the source does not mention are left untouched.
	Apply(cfg *domain.Config) error
}
