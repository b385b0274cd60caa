package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rudirimachado/portfolio-backend/config"
	"github.com/rudirimachado/portfolio-backend/internal/logging"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/domain"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/service"
	"github.com/rudirimachado/portfolio-backend/internal/resume"
)

// Handler serves the public portfolio view and the admin curation API.
type Handler struct {
	aggregator *service.Aggregator
	projects   *service.ProjectService
	galleries  *service.GalleryService
	resumeGen  *resume.Generator
	profile    config.ProfileConfig
	username   string
}

// New creates the portfolio handler.
func New(agg *service.Aggregator, projects *service.ProjectService, galleries *service.GalleryService, profile config.ProfileConfig, username string) *Handler {
	return &Handler{
		aggregator: agg,
		projects:   projects,
		galleries:  galleries,
		resumeGen:  resume.NewGenerator(),
		profile:    profile,
		username:   username,
	}
}

// getPortfolio is the public endpoint: profile with fallbacks, the six
// category buckets, and the header stats.
func (h *Handler) getPortfolio(c *gin.Context) {
	profile, categorized, flat := h.aggregator.OrganizeAllProjects(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"profile":  h.profileWithFallbacks(profile),
		"projects": categorized,
		"stats":    buildStats(categorized, flat),
	})
}

// downloadResume renders the resume through the fallback chain.
func (h *Handler) downloadResume(c *gin.Context) {
	profile, categorized, flat := h.aggregator.OrganizeAllProjects(c.Request.Context())

	personal := resume.PersonalInfo{
		Name:     h.profile.Name,
		Title:    h.profile.Title,
		Email:    h.profile.Email,
		Phone:    h.profile.Phone,
		Location: h.profile.Location,
		Website:  h.profile.Website,
	}
	data := resume.Build(personal, h.profile.Bio, profile, categorized, flat)

	content, contentType, err := h.resumeGen.Generate(data)
	if err != nil {
		logging.FromContext(c.Request.Context()).Error("resume_download", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "resume generation failed"})
		return
	}

	filename := "resume.html"
	if strings.HasPrefix(contentType, "text/plain") {
		filename = "resume.txt"
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, content)
}

// listProjects returns the admin view: merged GitHub projects and the raw
// custom project records.
func (h *Handler) listProjects(c *gin.Context) {
	profile, githubProjects := h.aggregator.GitHubProjects(c.Request.Context())
	_, _, flat := h.aggregator.OrganizeAllProjects(c.Request.Context())

	custom := make([]domain.UnifiedProject, 0)
	for _, p := range flat {
		if p.Source == "custom" {
			custom = append(custom, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":              true,
		"user":            h.profileWithFallbacks(profile),
		"github_projects": githubProjects,
		"custom_projects": custom,
		"categories":      domain.Categories,
	})
}

func (h *Handler) createCustomProject(c *gin.Context) {
	var req createCustomProjectReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	project, err := h.projects.CreateCustomProject(c.Request.Context(), service.CustomProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		GitHubURL:   req.GitHubURL,
		DemoURL:     req.DemoURL,
		Language:    req.Language,
		Tags:        req.Tags,
		Featured:    req.Featured,
		Color:       req.Color,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": project})
}

func (h *Handler) deleteCustomProject(c *gin.Context) {
	projectID := c.Param("id")

	if err := h.projects.DeleteCustomProject(c.Request.Context(), projectID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) updateOverride(c *gin.Context) {
	githubID := c.Param("github_id")

	var req updateOverrideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	metadata, err := h.projects.UpdateRepoOverride(c.Request.Context(), githubID, domain.Override{
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		DemoURL:     req.DemoURL,
		Tags:        req.Tags,
		Featured:    req.Featured,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "metadata": metadata})
}

func (h *Handler) getGallery(c *gin.Context) {
	gallery := h.galleries.GetGallery(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true, "gallery": gallery})
}

// uploadImages accepts a multipart form: any number of file parts, an
// optional "module" field, an "is_main" flag, and an optional
// "description_<part>" caption per file part.
func (h *Handler) uploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid multipart form"})
		return
	}

	moduleName := c.PostForm("module")
	setMain := c.PostForm("is_main") == "true"

	var files []service.UploadFile
	for key, headers := range form.File {
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				continue
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil || len(data) == 0 {
				continue
			}
			files = append(files, service.UploadFile{
				Filename: fh.Filename,
				Data:     data,
				Caption:  c.PostForm("description_" + key),
			})
		}
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "no files uploaded"})
		return
	}

	added, err := h.galleries.AddImages(c.Request.Context(), c.Param("id"), moduleName, files, setMain)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to save images"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":              true,
		"uploaded_images": added,
		"total_images":    len(h.galleries.GetGallery(c.Param("id")).Images),
	})
}

func (h *Handler) deleteImage(c *gin.Context) {
	err := h.galleries.DeleteImage(c.Request.Context(), c.Param("id"), c.Param("image_id"))
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) setMainImage(c *gin.Context) {
	var req setMainImageReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	err := h.galleries.SetMainImage(c.Request.Context(), c.Param("id"), req.ImageID)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) profileWithFallbacks(p domain.Profile) profilePayload {
	out := profilePayload{
		Name:      p.Name,
		Avatar:    p.AvatarURL,
		Bio:       p.Bio,
		GitHubURL: p.HTMLURL,
		Location:  p.Location,
		Email:     h.profile.Email,
		Website:   h.profile.Website,
	}
	if out.Name == "" {
		out.Name = h.profile.Name
	}
	if out.Bio == "" {
		out.Bio = h.profile.Bio
	}
	if out.Location == "" {
		out.Location = h.profile.Location
	}
	if out.GitHubURL == "" {
		out.GitHubURL = "https://github.com/" + h.username
	}
	return out
}
