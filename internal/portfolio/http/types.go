package http

import (
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/domain"
)

type createCustomProjectReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	GitHubURL   string   `json:"github_url"`
	DemoURL     string   `json:"demo_url"`
	Language    string   `json:"language"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Color       string   `json:"color"`
}

type updateOverrideReq struct {
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DemoURL     string   `json:"demo_url"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

type setMainImageReq struct {
	ImageID string `json:"image_id"`
}

// profilePayload is the public profile block with configured fallbacks
// already applied.
type profilePayload struct {
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Bio       string `json:"bio"`
	GitHubURL string `json:"github_url"`
	Location  string `json:"location"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
}

// statsPayload mirrors the counters shown on the public page header.
type statsPayload struct {
	Systems    int `json:"systems"`
	Automation int `json:"automation"`
	Total      int `json:"total"`
	Languages  int `json:"languages"`
}

func buildStats(categorized domain.CategorizedProjects, flat []domain.UnifiedProject) statsPayload {
	languages := map[string]bool{}
	for _, p := range flat {
		if p.Language != "" {
			languages[p.Language] = true
		}
	}
	return statsPayload{
		Systems:    len(categorized[domain.CategorySystem]),
		Automation: len(categorized[domain.CategoryAutomation]),
		Total:      len(flat),
		Languages:  len(languages),
	}
}
