package resume

import (
	"sort"

	"github.com/rudirimachado/portfolio-backend/internal/portfolio/domain"
)

// sectionHeadings maps buckets to résumé section titles, in print order.
var sectionOrder = []struct {
	category domain.Category
	heading  string
}{
	{domain.CategorySystem, "Systems & Platforms"},
	{domain.CategoryAutomation, "Automation & RPA"},
	{domain.CategoryAPI, "APIs & Services"},
	{domain.CategoryWeb, "Web"},
	{domain.CategoryMobile, "Mobile"},
}

const maxHighlightsPerSection = 6

// Build assembles the résumé model from the aggregated portfolio. The
// profile fills personal fields the configuration leaves empty.
func Build(personal PersonalInfo, summary string, profile domain.Profile, categorized domain.CategorizedProjects, flat []domain.UnifiedProject) Data {
	if personal.Name == "" {
		personal.Name = profile.Name
	}
	if personal.GitHub == "" {
		personal.GitHub = profile.HTMLURL
	}
	if personal.Location == "" {
		personal.Location = profile.Location
	}

	data := Data{
		Personal: personal,
		Summary:  summary,
		Stats: Stats{
			TotalProjects: len(flat),
			Systems:       len(categorized[domain.CategorySystem]),
			Automation:    len(categorized[domain.CategoryAutomation]),
			APIs:          len(categorized[domain.CategoryAPI]),
			Web:           len(categorized[domain.CategoryWeb]),
			Mobile:        len(categorized[domain.CategoryMobile]),
		},
		Skills: languagesOf(flat),
	}
	data.Stats.Languages = len(data.Skills)

	for _, sec := range sectionOrder {
		projects := categorized[sec.category]
		if len(projects) == 0 {
			continue
		}
		n := len(projects)
		if n > maxHighlightsPerSection {
			n = maxHighlightsPerSection
		}
		highlights := make([]ProjectHighlight, 0, n)
		for _, p := range projects[:n] {
			highlights = append(highlights, ProjectHighlight{
				Title:       p.Title,
				Description: p.Description,
				Language:    p.Language,
				Stars:       p.Stars,
				Featured:    p.Featured,
			})
		}
		data.Sections = append(data.Sections, Section{Heading: sec.heading, Highlights: highlights})
	}

	return data
}

// languagesOf returns the distinct project languages, sorted for stable
// output.
func languagesOf(projects []domain.UnifiedProject) []string {
	seen := map[string]bool{}
	for _, p := range projects {
		if p.Language != "" && p.Language != "N/A" {
			seen[p.Language] = true
		}
	}
	out := make([]string, 0, len(seen))
	for lang := range seen {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}
