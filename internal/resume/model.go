// Package resume turns the aggregated portfolio into a downloadable résumé
// document. Rendering runs through a fallback chain: if the primary HTML
// renderer fails, a simplified plain-text rendition is produced instead, so
// the export endpoint always returns a document.
package resume

// PersonalInfo is the contact block shown at the top of the résumé.
// Values come from configuration, with the GitHub profile filling gaps.
type PersonalInfo struct {
	Name     string
	Title    string
	Email    string
	Phone    string
	Location string
	GitHub   string
	Website  string
}

// Stats summarizes the portfolio for the header block.
type Stats struct {
	TotalProjects int
	Systems       int
	Automation    int
	APIs          int
	Web           int
	Mobile        int
	Languages     int
}

// ProjectHighlight is one project line inside a category section.
type ProjectHighlight struct {
	Title       string
	Description string
	Language    string
	Stars       int
	Featured    bool
}

// Section groups the highlights of one category.
type Section struct {
	Heading    string
	Highlights []ProjectHighlight
}

// Data is the complete résumé model handed to the renderers.
type Data struct {
	Personal PersonalInfo
	Summary  string
	Stats    Stats
	Skills   []string
	Sections []Section
}
