package resume

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
)

// Renderer produces one representation of the résumé.
type Renderer interface {
	Render(data Data) (content []byte, contentType string, err error)
}

// Generator walks its renderer chain and returns the first successful
// result. The last renderer in the default chain cannot fail, so Generate
// only errors on an empty chain.
type Generator struct {
	renderers []Renderer
}

// NewGenerator builds the default chain: styled HTML first, plain text as
// the simplified fallback.
func NewGenerator() *Generator {
	return &Generator{renderers: []Renderer{&HTMLRenderer{}, &TextRenderer{}}}
}

// NewGeneratorWith builds a generator over an explicit chain (tests).
func NewGeneratorWith(renderers ...Renderer) *Generator {
	return &Generator{renderers: renderers}
}

// Generate renders the résumé with the first renderer that succeeds.
func (g *Generator) Generate(data Data) ([]byte, string, error) {
	var lastErr error
	for _, r := range g.renderers {
		content, ctype, err := r.Render(data)
		if err == nil {
			return content, ctype, nil
		}
		lastErr = err
		log.Printf("[warn] resume: renderer %T failed, trying next: %v", r, err)
	}
	return nil, "", fmt.Errorf("all resume renderers failed: %w", lastErr)
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Personal.Name}} — Résumé</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 40px auto; max-width: 800px; color: #2c3e50; }
h1 { margin-bottom: 0; }
h2 { border-bottom: 2px solid #2c3e50; padding-bottom: 4px; margin-top: 28px; }
.contact { color: #555; margin-bottom: 20px; }
.stats span { margin-right: 18px; }
.project { margin: 10px 0; }
.project .title { font-weight: bold; }
.featured { color: #b8860b; }
</style>
</head>
<body>
<h1>{{.Personal.Name}}</h1>
<p class="contact">{{.Personal.Title}}<br>
{{if .Personal.Email}}{{.Personal.Email}} · {{end}}{{if .Personal.Phone}}{{.Personal.Phone}} · {{end}}{{.Personal.Location}}<br>
{{if .Personal.GitHub}}{{.Personal.GitHub}}{{end}}{{if .Personal.Website}} · {{.Personal.Website}}{{end}}</p>
{{if .Summary}}<p>{{.Summary}}</p>{{end}}
<div class="stats">
<span>{{.Stats.TotalProjects}} projects</span>
<span>{{.Stats.Systems}} systems</span>
<span>{{.Stats.Automation}} automations</span>
<span>{{.Stats.Languages}} languages</span>
</div>
{{if .Skills}}<h2>Skills</h2><p>{{range $i, $s := .Skills}}{{if $i}}, {{end}}{{$s}}{{end}}</p>{{end}}
{{range .Sections}}
<h2>{{.Heading}}</h2>
{{range .Highlights}}
<div class="project">
<span class="title">{{.Title}}</span>{{if .Featured}} <span class="featured">★</span>{{end}}{{if .Language}} — {{.Language}}{{end}}
<br>{{.Description}}
</div>
{{end}}
{{end}}
</body>
</html>`

// HTMLRenderer is the primary renderer.
type HTMLRenderer struct{}

func (r *HTMLRenderer) Render(data Data) ([]byte, string, error) {
	tmpl, err := template.New("resume").Parse(htmlTemplate)
	if err != nil {
		return nil, "", fmt.Errorf("parse resume template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, "", fmt.Errorf("render resume: %w", err)
	}
	return buf.Bytes(), "text/html; charset=utf-8", nil
}

// TextRenderer is the simplified fallback representation.
type TextRenderer struct{}

func (r *TextRenderer) Render(data Data) ([]byte, string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n%s\n", data.Personal.Name, data.Personal.Title)
	if data.Personal.Email != "" {
		fmt.Fprintf(&buf, "%s\n", data.Personal.Email)
	}
	if data.Personal.GitHub != "" {
		fmt.Fprintf(&buf, "%s\n", data.Personal.GitHub)
	}
	if data.Summary != "" {
		fmt.Fprintf(&buf, "\n%s\n", data.Summary)
	}
	fmt.Fprintf(&buf, "\nProjects: %d | Systems: %d | Automation: %d | Languages: %d\n",
		data.Stats.TotalProjects, data.Stats.Systems, data.Stats.Automation, data.Stats.Languages)
	for _, sec := range data.Sections {
		fmt.Fprintf(&buf, "\n== %s ==\n", sec.Heading)
		for _, p := range sec.Highlights {
			marker := "-"
			if p.Featured {
				marker = "*"
			}
			fmt.Fprintf(&buf, "%s %s (%s): %s\n", marker, p.Title, p.Language, p.Description)
		}
	}
	return buf.Bytes(), "text/plain; charset=utf-8", nil
}
