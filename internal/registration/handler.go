package registration

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jilpatel7/Tiffin-Finder/internal/provider"
)

type Handler struct {
	providers *provider.Service
}

func NewHandler(providers *provider.Service) *Handler {
	return &Handler{providers: providers}
}

// --------------------------------------------------
// GET /register/options
// --------------------------------------------------
// Choices for the form's selectors. Distinct values from existing listings
// win; the static catalog fills in while the marketplace is empty.
func (h *Handler) Options(c *gin.Context) {
	ctx := c.Request.Context()

	areas := h.providers.Areas(ctx)
	if len(areas) == 0 {
		areas = provider.DefaultAreas
	}

	cuisines := h.providers.Cuisines(ctx)
	if len(cuisines) == 0 {
		cuisines = provider.CuisineTypes
	}

	c.JSON(http.StatusOK, gin.H{
		"areas":          areas,
		"cuisines":       cuisines,
		"delivery_types": provider.DeliveryTypeOptions,
		"food_types": []string{
			provider.FoodTypeVeg,
			provider.FoodTypeNonVeg,
			provider.FoodTypeBoth,
		},
	})
}

// --------------------------------------------------
// POST /register/validate
// --------------------------------------------------
// Gate check for one wizard step, so the client can block Next on missing
// fields without duplicating the rules.
func (h *Handler) ValidateStep(c *gin.Context) {
	var req struct {
		Step  string `json:"step"`
		Draft Draft  `json:"draft"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	step, err := ParseStep(req.Step)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if verr := ValidateStep(step, &req.Draft); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid":          false,
			"step":           verr.Step.String(),
			"missing_fields": verr.MissingFields,
		})
		return
	}

	next := step
	if next < StepComplete {
		next++
	}
	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"next":  next.String(),
	})
}

// --------------------------------------------------
// POST /register
// --------------------------------------------------
// Final submission. The full gate set runs again here regardless of what the
// client validated; a failed write returns a retryable error and never
// touches the caller's draft.
func (h *Handler) Register(c *gin.Context) {
	var draft Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if verr := FinalGuard(&draft); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "please fill in all required fields",
			"step":           verr.Step.String(),
			"missing_fields": verr.MissingFields,
		})
		return
	}

	reg, err := BuildRegistration(&draft)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	providerID, err := h.providers.Register(c.Request.Context(), reg)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "failed to submit registration, please try again",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"provider_id": providerID,
		"status":      provider.StatusPending,
		"message":     "registration submitted, we'll contact you within 24 hours for verification",
	})
}
