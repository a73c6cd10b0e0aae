package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/core/ports/driven"
	"github.com/custodia-labs/stargazer/internal/core/ports/driving"
	"github.com/custodia-labs/stargazer/internal/logger"
)

// Ensure GenerateService implements the interface.
var _ driving.Generator = (*GenerateService)(nil)

// GenerateService runs the fetch, scrape and render pipeline.
// Every step runs sequentially and the first error aborts the run.
type GenerateService struct {
	cfg       domain.Config
	stars     driven.StarSource
	lists     driven.ListSource
	members   driven.MembershipSource
	snapshots driven.SnapshotStore
	documents driven.DocumentStore
	renderer  *Renderer
}

// NewGenerateService creates a new generate service.
// snapshots is optional; when nil no snapshot is written.
func NewGenerateService(
	cfg domain.Config,
	stars driven.StarSource,
	lists driven.ListSource,
	members driven.MembershipSource,
	snapshots driven.SnapshotStore,
	documents driven.DocumentStore,
) *GenerateService {
	return &GenerateService{
		cfg:       cfg,
		stars:     stars,
		lists:     lists,
		members:   members,
		snapshots: snapshots,
		documents: documents,
		renderer:  NewRenderer(cfg.WebBaseURL),
	}
}

// Generate fetches everything fresh and writes the snapshot and the document.
func (s *GenerateService) Generate(ctx context.Context) (*domain.GenerateResult, error) {
	if s.stars == nil || s.lists == nil || s.members == nil || s.documents == nil {
		return nil, errors.New("generate service not fully configured")
	}

	// 1. Credentials, before any request that could partly succeed
	if v, ok := s.stars.(driven.CredentialValidator); ok {
		logger.Section("Credentials")
		if err := v.Validate(ctx); err != nil {
			return nil, fmt.Errorf("validate credentials: %w", err)
		}
	}

	// 2. Starred repositories
	logger.Section("Starred repositories")
	catalog, err := s.stars.FetchStarred(ctx, s.cfg.Username)
	if err != nil {
		return nil, fmt.Errorf("fetch starred: %w", err)
	}
	logger.Info("fetched %d starred repositories", catalog.Len())

	result := &domain.GenerateResult{
		Repositories: catalog.Len(),
		OutputPath:   s.cfg.OutputPath,
	}

	// 3. Snapshot, before anything else can fail
	if s.snapshots != nil {
		if err := s.snapshots.Save(ctx, catalog); err != nil {
			return nil, fmt.Errorf("save snapshot: %w", err)
		}
		result.SnapshotPath = s.snapshots.Path()
		logger.Debug("snapshot written to %s", s.snapshots.Path())
	}

	// 4. Lists and their members
	logger.Section("Star lists")
	lists, memberships, err := s.collectLists(ctx)
	if err != nil {
		return nil, err
	}
	result.Lists = len(lists)

	// 5. Render
	logger.Section("Render")
	out := s.renderer.Render(RenderInput{
		Catalog:     catalog,
		Lists:       lists,
		Memberships: memberships,
		Options: RenderOptions{
			SortBy:          s.cfg.SortBy,
			Style:           s.cfg.Style,
			TableOfContents: s.cfg.TableOfContents,
			Unlisted:        s.cfg.Unlisted,
		},
	}, nil)
	result.Listed = len(out.Listed)
	result.Unlisted = out.Unlisted
	logger.Info("%d listed, %d unlisted", result.Listed, result.Unlisted)

	// 6. Template substitution
	tpl, err := s.documents.ReadTemplate(ctx, s.cfg.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	doc, found := Substitute(tpl, s.cfg.Placeholder, out.Body)
	if !found {
		logger.Warn("placeholder %q not found in %s; writing template unchanged",
			s.cfg.Placeholder, s.cfg.TemplatePath)
	}
	if err := s.documents.WriteDocument(ctx, s.cfg.OutputPath, doc); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	logger.Debug("document written to %s", s.cfg.OutputPath)

	return result, nil
}

// Lists discovers star lists and counts the members of each.
func (s *GenerateService) Lists(ctx context.Context) ([]domain.ListSummary, error) {
	if s.lists == nil || s.members == nil {
		return nil, errors.New("list sources not configured")
	}

	lists, memberships, err := s.collectLists(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ListSummary, 0, len(lists))
	for _, list := range lists {
		summaries = append(summaries, domain.ListSummary{
			List:    list,
			Members: len(memberships[list.ID]),
		})
	}
	return summaries, nil
}

func (s *GenerateService) collectLists(ctx context.Context) ([]domain.StarList, domain.Memberships, error) {
	lists, err := s.lists.DiscoverLists(ctx, s.cfg.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("discover lists: %w", err)
	}
	logger.Info("discovered %d lists", len(lists))

	memberships := make(domain.Memberships, len(lists))
	for _, list := range lists {
		refs, err := s.members.ListMembers(ctx, s.cfg.Username, list.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("list members of %q: %w", list.ID, err)
		}
		memberships[list.ID] = refs
		logger.Debug("list %q: %d repositories", list.Name, len(refs))
	}
	return lists, memberships, nil
}

// Substitute replaces the first occurrence of placeholder in tpl with body.
// It reports whether the placeholder was present.
func Substitute(tpl, placeholder, body string) (string, bool) {
	if placeholder == "" || !strings.Contains(tpl, placeholder) {
		return tpl, false
	}
	return strings.Replace(tpl, placeholder, body, 1), true
}
