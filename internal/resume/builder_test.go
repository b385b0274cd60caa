package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudirimachado/portfolio-backend/internal/portfolio/domain"
)

func project(title, category, language string, featured bool) domain.UnifiedProject {
	return domain.UnifiedProject{
		Title:    title,
		Category: domain.Category(category),
		Language: language,
		Featured: featured,
	}
}

func categorize(projects []domain.UnifiedProject) domain.CategorizedProjects {
	out := domain.NewCategorizedProjects()
	for _, p := range projects {
		c := domain.NormalizeCategory(string(p.Category))
		out[c] = append(out[c], p)
	}
	return out
}

func TestBuild_StatsAndSkills(t *testing.T) {
	flat := []domain.UnifiedProject{
		project("ERP Core", "system", "Go", true),
		project("Invoice Bot", "automation", "Python", false),
		project("Billing API", "api", "Go", false),
		project("Landing", "web", "N/A", false),
		project("Mystery", "other", "", false),
	}

	data := Build(PersonalInfo{Name: "Rudi"}, "summary", domain.Profile{}, categorize(flat), flat)

	assert.Equal(t, 5, data.Stats.TotalProjects)
	assert.Equal(t, 1, data.Stats.Systems)
	assert.Equal(t, 1, data.Stats.Automation)
	assert.Equal(t, 1, data.Stats.APIs)
	assert.Equal(t, 1, data.Stats.Web)
	assert.Equal(t, 0, data.Stats.Mobile)

	// "N/A" and empty languages are not skills.
	assert.Equal(t, []string{"Go", "Python"}, data.Skills)
	assert.Equal(t, 2, data.Stats.Languages)
}

func TestBuild_ProfileFillsEmptyPersonalFields(t *testing.T) {
	profile := domain.Profile{
		Name:     "Rudi Machado",
		HTMLURL:  "https://github.com/rudi",
		Location: "Joinville",
	}

	data := Build(PersonalInfo{Location: "Berlin"}, "", profile, domain.NewCategorizedProjects(), nil)

	assert.Equal(t, "Rudi Machado", data.Personal.Name)
	assert.Equal(t, "https://github.com/rudi", data.Personal.GitHub)
	assert.Equal(t, "Berlin", data.Personal.Location, "configured values win over the profile")
}

func TestBuild_SectionsSkipEmptyBuckets(t *testing.T) {
	flat := []domain.UnifiedProject{
		project("Invoice Bot", "automation", "Python", false),
		project("Billing API", "api", "Go", false),
	}

	data := Build(PersonalInfo{}, "", domain.Profile{}, categorize(flat), flat)

	require.Len(t, data.Sections, 2)
	assert.Equal(t, "Automation & RPA", data.Sections[0].Heading)
	assert.Equal(t, "APIs & Services", data.Sections[1].Heading)
}

func TestBuild_HighlightsCapped(t *testing.T) {
	var flat []domain.UnifiedProject
	for i := 0; i < 10; i++ {
		flat = append(flat, project("Web App", "web", "JavaScript", false))
	}

	data := Build(PersonalInfo{}, "", domain.Profile{}, categorize(flat), flat)

	require.Len(t, data.Sections, 1)
	assert.Len(t, data.Sections[0].Highlights, maxHighlightsPerSection)
}
