package domain

// Profile holds the public profile fields fetched from GitHub.
// A failed fetch yields the zero value; handlers apply configured fallbacks.
type Profile struct {
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	HTMLURL     string `json:"html_url"`
	Location    string `json:"location"`
	PublicRepos int    `json:"public_repos"`
}

// Repository is an immutable snapshot of one remote repository per fetch.
// Timestamps stay RFC 3339 strings so bucket sorting can compare them
// lexicographically, same as the stored updated_at of custom projects.
type Repository struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	HTMLURL     string `json:"html_url"`
	Homepage    string `json:"homepage"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Size        int    `json:"size"`
}

// Override is the locally stored customization for one repository, keyed by
// the repository id. An absent field defers to the repository-derived value.
type Override struct {
	Category    string   `json:"category,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	DemoURL     string   `json:"demo_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

// CustomProject is a project entirely owned by the local store.
type CustomProject struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Source      string   `json:"source"`
	GitHubURL   string   `json:"github_url"`
	DemoURL     string   `json:"demo_url"`
	Language    string   `json:"language"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Color       string   `json:"color"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// Image is one uploaded gallery image with the payload embedded as a
// data: URI so the document stays self-contained.
type Image struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	Data       string `json:"data"`
	Size       int    `json:"size"`
	Type       string `json:"type"`
	MimeType   string `json:"mime_type"`
	Module     string `json:"module"`
	UploadedAt string `json:"uploaded_at"`
	Caption    string `json:"description"`
}

// Gallery groups the images of one project. Modules is a secondary view over
// Images: every image in a module list is also present in the flat list, and
// MainImage is either empty or the Data of some image in the flat list.
type Gallery struct {
	MainImage string             `json:"main_image"`
	Images    []Image            `json:"images"`
	Modules   map[string][]Image `json:"modules"`
}

// EmptyGallery returns a well-formed gallery with no images.
func EmptyGallery() Gallery {
	return Gallery{
		MainImage: "",
		Images:    []Image{},
		Modules:   map[string][]Image{},
	}
}

// UnifiedProject is the read-time merge of a repository with its override and
// gallery, or of a custom project with its gallery. Never persisted.
type UnifiedProject struct {
	ID          string             `json:"id"`
	GitHubID    string             `json:"github_id,omitempty"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    Category           `json:"category"`
	Source      string             `json:"source"`
	GitHubURL   string             `json:"github_url"`
	DemoURL     string             `json:"demo_url"`
	Language    string             `json:"language"`
	Color       string             `json:"color"`
	MainImage   string             `json:"main_image"`
	Gallery     []Image            `json:"gallery"`
	Modules     map[string][]Image `json:"modules"`
	Tags        []string           `json:"tags"`
	Featured    bool               `json:"featured"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
	Stars       int                `json:"stars"`
	Forks       int                `json:"forks"`
	SizeKB      int                `json:"size"`
}

// Document is the persisted store layout. The three top-level keys are the
// compatibility contract with existing portfolio_data.json files.
type Document struct {
	CustomProjects []CustomProject     `json:"custom_projects"`
	Overrides      map[string]Override `json:"github_metadata"`
	Galleries      map[string]Gallery  `json:"project_galleries"`
}

// NewDocument returns an empty document with all three collections present.
func NewDocument() *Document {
	return &Document{
		CustomProjects: []CustomProject{},
		Overrides:      map[string]Override{},
		Galleries:      map[string]Gallery{},
	}
}

// GalleryKey derives the gallery key for a remote repository id.
func GalleryKey(repoID string) string {
	return "github_" + repoID
}
