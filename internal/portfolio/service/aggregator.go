package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/rudirimachado/portfolio-backend/internal/logging"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/categorize"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/domain"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/store"
)

// RemoteSource fetches the transient GitHub snapshot per request.
type RemoteSource interface {
	FetchProfileAndRepos(ctx context.Context, username string) (domain.Profile, []domain.Repository)
}

// gradientPalette is cycled by fetch position to give every repository card
// a deterministic accent. Purely cosmetic.
var gradientPalette = []string{
	"linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
	"linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
	"linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)",
	"linear-gradient(135deg, #43e97b 0%, #38f9d7 100%)",
	"linear-gradient(135deg, #fa709a 0%, #fee140 100%)",
	"linear-gradient(135deg, #a8edea 0%, #fed6e3 100%)",
	"linear-gradient(135deg, #ffecd2 0%, #fcb69f 100%)",
	"linear-gradient(135deg, #ff9a9e 0%, #fecfef 100%)",
	"linear-gradient(135deg, #feca57 0%, #ff9ff3 100%)",
	"linear-gradient(135deg, #54a0ff 0%, #5f27cd 100%)",
}

// DefaultColor is assigned to custom projects created without a color.
var DefaultColor = gradientPalette[0]

// Aggregator merges the remote repository snapshot with local overrides,
// custom projects and galleries into the unified view.
type Aggregator struct {
	source   RemoteSource
	store    store.Store
	username string
}

// NewAggregator creates an aggregator for the given GitHub username.
func NewAggregator(source RemoteSource, st store.Store, username string) *Aggregator {
	return &Aggregator{source: source, store: st, username: username}
}

// OrganizeAllProjects builds the unified, categorized view. It never fails:
// any fault inside the merge collapses to an empty-but-well-shaped result so
// rendering downstream never observes a missing bucket.
func (a *Aggregator) OrganizeAllProjects(ctx context.Context) (profile domain.Profile, categorized domain.CategorizedProjects, flat []domain.UnifiedProject) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Errorf("organize_all_projects", "recovered: %v", r)
			profile = domain.Profile{}
			categorized = domain.NewCategorizedProjects()
			flat = []domain.UnifiedProject{}
		}
	}()

	profile, repoProjects := a.processGitHubProjects(ctx)
	doc := a.store.Load()

	customProjects := make([]domain.UnifiedProject, 0, len(doc.CustomProjects))
	for _, cp := range doc.CustomProjects {
		customProjects = append(customProjects, unifyCustomProject(cp, galleryFor(doc, cp.ID)))
	}

	flat = append(repoProjects, customProjects...)

	categorized = domain.NewCategorizedProjects()
	for _, p := range flat {
		bucket := domain.NormalizeCategory(string(p.Category))
		categorized[bucket] = append(categorized[bucket], p)
	}
	for _, c := range domain.Categories {
		sortBucket(categorized[c])
	}

	return profile, categorized, flat
}

// GitHubProjects returns the profile and the merged remote-sourced projects
// only, as shown on the admin curation screen.
func (a *Aggregator) GitHubProjects(ctx context.Context) (domain.Profile, []domain.UnifiedProject) {
	return a.processGitHubProjects(ctx)
}

// processGitHubProjects fetches the snapshot and merges each repository with
// its override and gallery.
func (a *Aggregator) processGitHubProjects(ctx context.Context) (domain.Profile, []domain.UnifiedProject) {
	profile, repos := a.source.FetchProfileAndRepos(ctx, a.username)
	doc := a.store.Load()

	out := make([]domain.UnifiedProject, 0, len(repos))
	for i, repo := range repos {
		repoID := strconv.FormatInt(repo.ID, 10)
		out = append(out, unifyRepository(repo, repoID, doc.Overrides[repoID],
			galleryFor(doc, domain.GalleryKey(repoID)), gradientPalette[i%len(gradientPalette)]))
	}
	return profile, out
}

// unifyRepository resolves each display field with override-wins semantics.
// demo_url is the one deliberate exception: the remote homepage beats the
// override, matching the behavior existing stored data was curated against.
func unifyRepository(repo domain.Repository, repoID string, ov domain.Override, gal domain.Gallery, color string) domain.UnifiedProject {
	category := domain.NormalizeCategory(ov.Category)
	if ov.Category == "" {
		category = categorize.Categorize(repo.Name, repo.Language, repo.Description)
	}

	title := ov.Title
	if title == "" {
		title = titleFromRepoName(repo.Name)
	}

	language := repo.Language
	if language == "" {
		language = "N/A"
	}

	description := ov.Description
	if description == "" {
		description = repo.Description
	}
	if description == "" {
		description = fmt.Sprintf("Project developed in %s", language)
	}

	demoURL := repo.Homepage
	if demoURL == "" {
		demoURL = ov.DemoURL
	}

	tags := ov.Tags
	if tags == nil {
		tags = []string{}
	}

	return domain.UnifiedProject{
		ID:          domain.GalleryKey(repoID),
		GitHubID:    repoID,
		Title:       title,
		Description: description,
		Category:    category,
		Source:      "github",
		GitHubURL:   repo.HTMLURL,
		DemoURL:     demoURL,
		Language:    language,
		Color:       color,
		MainImage:   gal.MainImage,
		Gallery:     gal.Images,
		Modules:     gal.Modules,
		Tags:        tags,
		Featured:    ov.Featured,
		CreatedAt:   repo.CreatedAt,
		UpdatedAt:   repo.UpdatedAt,
		Stars:       repo.Stars,
		Forks:       repo.Forks,
		SizeKB:      repo.Size,
	}
}

// unifyCustomProject attaches the gallery; custom projects always carry an
// explicit category so the categorizer is not consulted.
func unifyCustomProject(cp domain.CustomProject, gal domain.Gallery) domain.UnifiedProject {
	tags := cp.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.UnifiedProject{
		ID:          cp.ID,
		Title:       cp.Title,
		Description: cp.Description,
		Category:    domain.NormalizeCategory(cp.Category),
		Source:      "custom",
		GitHubURL:   cp.GitHubURL,
		DemoURL:     cp.DemoURL,
		Language:    cp.Language,
		Color:       cp.Color,
		MainImage:   gal.MainImage,
		Gallery:     gal.Images,
		Modules:     gal.Modules,
		Tags:        tags,
		Featured:    cp.Featured,
		CreatedAt:   cp.CreatedAt,
		UpdatedAt:   cp.UpdatedAt,
	}
}

func galleryFor(doc *domain.Document, id string) domain.Gallery {
	if gal, ok := doc.Galleries[id]; ok {
		if gal.Images == nil {
			gal.Images = []domain.Image{}
		}
		if gal.Modules == nil {
			gal.Modules = map[string][]domain.Image{}
		}
		return gal
	}
	return domain.EmptyGallery()
}

// sortBucket orders featured projects first, then most recently updated.
// updated_at is a fixed-width RFC 3339 string, so byte comparison is a
// correct time ordering.
func sortBucket(projects []domain.UnifiedProject) {
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].Featured != projects[j].Featured {
			return projects[i].Featured
		}
		return projects[i].UpdatedAt > projects[j].UpdatedAt
	})
}

// titleFromRepoName turns "my-cool_repo" into "My Cool Repo".
func titleFromRepoName(name string) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	words := strings.Fields(cleaned)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
