// Package categorize assigns a display category to a repository from its
// name and description text.
package categorize

import (
	"strings"

	"github.com/rudirimachado/portfolio-backend/internal/portfolio/domain"
)

// keywordSet is one category with its trigger substrings. Sets are evaluated
// in declaration order and the first match wins, so a text matching several
// sets always resolves to the earliest one.
type keywordSet struct {
	category domain.Category
	keywords []string
}

var keywordSets = []keywordSet{
	{domain.CategoryAutomation, []string{
		"rpa", "bot", "robot", "automation", "scraping", "selenium", "scraper",
		"spider", "crawler", "extractor", "monitor", "notificador", "quickbook",
	}},
	{domain.CategorySystem, []string{
		"system", "erp", "sysrohden", "app", "dashboard", "admin",
		"manager", "platform", "cms", "crm", "portal",
	}},
	{domain.CategoryAPI, []string{
		"api", "rest", "endpoint", "service", "microservice", "backend",
	}},
	{domain.CategoryWeb, []string{
		"website", "web", "frontend", "react", "vue", "angular", "html", "css",
	}},
	{domain.CategoryMobile, []string{
		"mobile", "android", "ios", "flutter", "react-native",
	}},
}

// Categorize maps a repository to a category by case-insensitive substring
// match over the name and description. It is pure and total: it always
// returns one of the six categories, defaulting to other.
func Categorize(name, language, description string) domain.Category {
	_ = language // kept in the contract; categorization is text-only
	text := strings.ToLower(name + " " + description)
	for _, set := range keywordSets {
		for _, kw := range set.keywords {
			if strings.Contains(text, kw) {
				return set.category
			}
		}
	}
	return domain.CategoryOther
}
