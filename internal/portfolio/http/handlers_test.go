package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudirimachado/portfolio-backend/config"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/domain"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/service"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/store"
)

// stubSource feeds the aggregator a canned GitHub snapshot.
type stubSource struct {
	profile domain.Profile
	repos   []domain.Repository
}

func (s *stubSource) FetchProfileAndRepos(context.Context, string) (domain.Profile, []domain.Repository) {
	return s.profile, s.repos
}

type env struct {
	router *gin.Engine
	store  store.Store
}

func newEnv(t *testing.T, src service.RemoteSource) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewFileStore(filepath.Join(t.TempDir(), "portfolio_data.json"))
	agg := service.NewAggregator(src, st, "rudi")
	projects := service.NewProjectService(st)
	galleries := service.NewGalleryService(st)

	profile := config.ProfileConfig{Name: "Rudi Machado", Title: "Software Developer", Email: "rudi@example.com"}
	h := New(agg, projects, galleries, profile, "rudi")

	r := gin.New()
	api := r.Group("/api/v1")
	h.RegisterPublic(api)
	h.RegisterAdmin(api.Group("/admin"))
	return &env{router: r, store: st}
}

func (e *env) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	e.router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestGetPortfolio(t *testing.T) {
	src := &stubSource{
		profile: domain.Profile{Name: "From GitHub", HTMLURL: "https://github.com/rudi"},
		repos: []domain.Repository{
			{ID: 1, Name: "invoice-scraper", Language: "Python", UpdatedAt: "2025-01-01T00:00:00Z"},
		},
	}
	e := newEnv(t, src)

	w, resp := e.do(t, http.MethodGet, "/api/v1/portfolio", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["ok"])

	profile := resp["profile"].(map[string]any)
	assert.Equal(t, "From GitHub", profile["name"])
	assert.Equal(t, "rudi@example.com", profile["email"])

	projects := resp["projects"].(map[string]any)
	for _, bucket := range []string{"system", "automation", "api", "web", "mobile", "other"} {
		_, ok := projects[bucket]
		assert.True(t, ok, "bucket %s missing", bucket)
	}
	assert.Len(t, projects["automation"], 1)

	stats := resp["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["total"])
	assert.Equal(t, float64(1), stats["automation"])
}

func TestGetPortfolio_ProfileFallbacks(t *testing.T) {
	e := newEnv(t, &stubSource{})

	w, resp := e.do(t, http.MethodGet, "/api/v1/portfolio", "")
	require.Equal(t, http.StatusOK, w.Code)

	profile := resp["profile"].(map[string]any)
	assert.Equal(t, "Rudi Machado", profile["name"])
	assert.Equal(t, "https://github.com/rudi", profile["github_url"])
}

func TestDownloadResume(t *testing.T) {
	e := newEnv(t, &stubSource{profile: domain.Profile{Name: "Rudi"}})

	w, _ := e.do(t, http.MethodGet, "/api/v1/resume", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment; filename="resume.html"`)
	assert.Contains(t, w.Body.String(), "Rudi Machado")
}

func TestCustomProjectLifecycle(t *testing.T) {
	e := newEnv(t, &stubSource{})

	w, resp := e.do(t, http.MethodPost, "/api/v1/admin/custom-projects",
		`{"title": "Invoice Robot", "category": "automation", "featured": true}`)
	require.Equal(t, http.StatusCreated, w.Code)
	project := resp["project"].(map[string]any)
	id := project["id"].(string)
	assert.True(t, strings.HasPrefix(id, "custom_"))

	// The project shows up in the public portfolio.
	_, portfolio := e.do(t, http.MethodGet, "/api/v1/portfolio", "")
	automation := portfolio["projects"].(map[string]any)["automation"].([]any)
	require.Len(t, automation, 1)
	assert.Equal(t, "Invoice Robot", automation[0].(map[string]any)["title"])

	w, _ = e.do(t, http.MethodDelete, "/api/v1/admin/custom-projects/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = e.do(t, http.MethodDelete, "/api/v1/admin/custom-projects/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCustomProject_InvalidBody(t *testing.T) {
	e := newEnv(t, &stubSource{})

	w, _ := e.do(t, http.MethodPost, "/api/v1/admin/custom-projects", `{"title": "   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOverride(t *testing.T) {
	src := &stubSource{repos: []domain.Repository{
		{ID: 42, Name: "legacy-tool", Language: "Go", UpdatedAt: "2025-01-01T00:00:00Z"},
	}}
	e := newEnv(t, src)

	w, resp := e.do(t, http.MethodPut, "/api/v1/admin/github-projects/42",
		`{"title": "Shown Title", "category": "web", "featured": true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Shown Title", resp["metadata"].(map[string]any)["title"])

	_, portfolio := e.do(t, http.MethodGet, "/api/v1/portfolio", "")
	web := portfolio["projects"].(map[string]any)["web"].([]any)
	require.Len(t, web, 1)
	merged := web[0].(map[string]any)
	assert.Equal(t, "Shown Title", merged["title"])
	assert.Equal(t, true, merged["featured"])
}

func TestListProjects(t *testing.T) {
	src := &stubSource{
		profile: domain.Profile{Name: "Rudi"},
		repos:   []domain.Repository{{ID: 7, Name: "erp-core", UpdatedAt: "2025-01-01T00:00:00Z"}},
	}
	e := newEnv(t, src)

	_, created := e.do(t, http.MethodPost, "/api/v1/admin/custom-projects", `{"title": "Side Project"}`)
	require.NotNil(t, created["project"])

	w, resp := e.do(t, http.MethodGet, "/api/v1/admin/projects", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["github_projects"], 1)
	assert.Len(t, resp["custom_projects"], 1)
	assert.Len(t, resp["categories"], 6)
}

func multipartUpload(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, val := range fields {
		require.NoError(t, mw.WriteField(key, val))
	}
	for name, data := range files {
		part, err := mw.CreateFormFile(name, name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestGalleryEndpoints(t *testing.T) {
	e := newEnv(t, &stubSource{})

	body, ctype := multipartUpload(t,
		map[string]string{"module": "screens", "description_shot.png": "login page"},
		map[string][]byte{"shot.png": []byte("png bytes")},
	)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/projects/github_1/gallery/upload", body)
	req.Header.Set("Content-Type", ctype)
	e.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var uploaded struct {
		Images []domain.Image `json:"uploaded_images"`
		Total  int            `json:"total_images"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded))
	require.Len(t, uploaded.Images, 1)
	assert.Equal(t, 1, uploaded.Total)
	assert.Equal(t, "screens", uploaded.Images[0].Module)
	assert.Equal(t, "login page", uploaded.Images[0].Caption)
	imageID := uploaded.Images[0].ID

	w2, resp := e.do(t, http.MethodGet, "/api/v1/admin/projects/github_1/gallery", "")
	require.Equal(t, http.StatusOK, w2.Code)
	gallery := resp["gallery"].(map[string]any)
	assert.Len(t, gallery["images"], 1)
	assert.NotEmpty(t, gallery["main_image"])

	w3, _ := e.do(t, http.MethodPut, "/api/v1/admin/projects/github_1/gallery/main",
		`{"image_id": "`+imageID+`"}`)
	assert.Equal(t, http.StatusOK, w3.Code)

	w4, _ := e.do(t, http.MethodPut, "/api/v1/admin/projects/github_1/gallery/main",
		`{"image_id": "nope"}`)
	assert.Equal(t, http.StatusNotFound, w4.Code)

	w5, _ := e.do(t, http.MethodDelete, "/api/v1/admin/projects/github_1/gallery/"+imageID, "")
	assert.Equal(t, http.StatusOK, w5.Code)

	w6, _ := e.do(t, http.MethodDelete, "/api/v1/admin/projects/github_1/gallery/"+imageID, "")
	assert.Equal(t, http.StatusNotFound, w6.Code)
}

func TestUploadImages_NoFiles(t *testing.T) {
	e := newEnv(t, &stubSource{})

	body, ctype := multipartUpload(t, map[string]string{"module": "screens"}, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/projects/github_1/gallery/upload", body)
	req.Header.Set("Content-Type", ctype)
	e.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
