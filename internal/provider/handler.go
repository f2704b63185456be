package provider

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /providers
// --------------------------------------------------
func (h *Handler) ListProviders(c *gin.Context) {
	providers := h.service.ListApprovedProviders(c.Request.Context())
	c.JSON(http.StatusOK, providers)
}

// --------------------------------------------------
// GET /providers/:id
// --------------------------------------------------
func (h *Handler) GetProvider(c *gin.Context) {
	p, err := h.service.GetProvider(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "provider not found",
				"link":  "/search",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch provider"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// GET /meta/areas
// --------------------------------------------------
func (h *Handler) ListAreas(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Areas(c.Request.Context()))
}

// --------------------------------------------------
// GET /meta/cuisines
// --------------------------------------------------
func (h *Handler) ListCuisines(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Cuisines(c.Request.Context()))
}

// --------------------------------------------------
// POST /providers/:id/testimonials
// --------------------------------------------------
func (h *Handler) AddTestimonial(c *gin.Context) {
	var req struct {
		CustomerName string `json:"customer_name"`
		Rating       int    `json:"rating"`
		Comment      string `json:"comment"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.service.AddTestimonial(
		c.Request.Context(),
		c.Param("id"),
		req.CustomerName,
		req.Rating,
		req.Comment,
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "provider not found",
				"link":  "/search",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "review submitted, pending verification",
	})
}

// --------------------------------------------------
// POST /providers/:id/gallery
// --------------------------------------------------
func (h *Handler) UploadGallery(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || form.File["images"] == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "images are required"})
		return
	}

	urls, err := h.service.UploadGalleryImages(
		c.Request.Context(),
		c.Param("id"),
		form.File["images"],
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "images uploaded successfully",
		"urls":    urls,
	})
}
