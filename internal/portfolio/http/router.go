package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the unauthenticated portfolio routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/portfolio", h.getPortfolio)
	rg.GET("/resume", h.downloadResume)
}

// RegisterAdmin attaches the curation routes; the caller guards the group.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/projects", h.listProjects)
	rg.POST("/custom-projects", h.createCustomProject)
	rg.DELETE("/custom-projects/:id", h.deleteCustomProject)
	rg.PUT("/github-projects/:github_id", h.updateOverride)

	rg.GET("/projects/:id/gallery", h.getGallery)
	rg.POST("/projects/:id/gallery/upload", h.uploadImages)
	rg.DELETE("/projects/:id/gallery/:image_id", h.deleteImage)
	rg.PUT("/projects/:id/gallery/main", h.setMainImage)
}
