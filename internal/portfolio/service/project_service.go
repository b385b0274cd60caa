package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rudirimachado/portfolio-backend/internal/logging"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/domain"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/store"
)

// CustomProjectInput carries the admin-entered fields for a new project.
type CustomProjectInput struct {
	Title       string
	Description string
	Category    string
	GitHubURL   string
	DemoURL     string
	Language    string
	Tags        []string
	Featured    bool
	Color       string
}

// ProjectService curates custom projects and repository overrides.
type ProjectService struct {
	store store.Store
}

// NewProjectService creates a project service over the given store.
func NewProjectService(st store.Store) *ProjectService {
	return &ProjectService{store: st}
}

// CreateCustomProject stores a new locally-owned project and returns it.
func (s *ProjectService) CreateCustomProject(ctx context.Context, in CustomProjectInput) (*domain.CustomProject, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("title required")
	}

	color := in.Color
	if color == "" {
		color = DefaultColor
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	now := time.Now().UTC().Format(time.RFC3339)

	project := domain.CustomProject{
		ID:          newCustomProjectID(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    string(domain.NormalizeCategory(in.Category)),
		Source:      "custom",
		GitHubURL:   strings.TrimSpace(in.GitHubURL),
		DemoURL:     strings.TrimSpace(in.DemoURL),
		Language:    strings.TrimSpace(in.Language),
		Tags:        tags,
		Featured:    in.Featured,
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.store.Update(func(doc *domain.Document) error {
		doc.CustomProjects = append(doc.CustomProjects, project)
		return nil
	})
	if err != nil {
		logging.FromContext(ctx).Error("create_custom_project", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreSave, err)
	}
	return &project, nil
}

// DeleteCustomProject removes the project and its gallery in one write.
func (s *ProjectService) DeleteCustomProject(ctx context.Context, projectID string) error {
	err := s.store.Update(func(doc *domain.Document) error {
		kept := doc.CustomProjects[:0]
		found := false
		for _, p := range doc.CustomProjects {
			if p.ID == projectID {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		if !found {
			return domain.ErrProjectNotFound
		}
		doc.CustomProjects = kept
		delete(doc.Galleries, projectID)
		return nil
	})
	if err != nil {
		if err == domain.ErrProjectNotFound {
			return err
		}
		logging.FromContext(ctx).Error("delete_custom_project", err)
		return fmt.Errorf("%w: %v", domain.ErrStoreSave, err)
	}
	return nil
}

// UpdateRepoOverride replaces the override stored for a repository id.
// Empty fields are dropped so they keep deferring to the derived values.
func (s *ProjectService) UpdateRepoOverride(ctx context.Context, repoID string, ov domain.Override) (*domain.Override, error) {
	cleaned := domain.Override{
		Category:    strings.TrimSpace(ov.Category),
		Title:       strings.TrimSpace(ov.Title),
		Description: strings.TrimSpace(ov.Description),
		DemoURL:     strings.TrimSpace(ov.DemoURL),
		Featured:    ov.Featured,
	}
	for _, t := range ov.Tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned.Tags = append(cleaned.Tags, t)
		}
	}

	err := s.store.Update(func(doc *domain.Document) error {
		doc.Overrides[repoID] = cleaned
		return nil
	})
	if err != nil {
		logging.FromContext(ctx).Error("update_repo_override", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreSave, err)
	}
	return &cleaned, nil
}

// newCustomProjectID mirrors the id shape of existing stored data.
func newCustomProjectID() string {
	return "custom_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
