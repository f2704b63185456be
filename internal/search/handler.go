package search

import (
	"net/http"
	"strconv"

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
// GET /search
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	q := parseQuery(c)

	records := h.providers.ListApprovedProviders(c.Request.Context())
	results := Search(records, q)

	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}

func parseQuery(c *gin.Context) Query {
	q := DefaultQuery()

	q.FreeText = c.Query("q")
	if v := c.Query("area"); v != "" {
		q.Area = v
	}
	if v := c.Query("cuisine"); v != "" {
		q.Cuisine = v
	}
	if v := c.Query("food_type"); v != "" {
		q.FoodType = v
	}
	if v := c.Query("delivery_type"); v != "" {
		q.DeliveryType = v
	}
	if v, err := strconv.ParseFloat(c.Query("price_min"), 64); err == nil {
		q.PriceMin = v
	}
	if v, err := strconv.ParseFloat(c.Query("price_max"), 64); err == nil {
		q.PriceMax = v
	}
	if v := c.Query("sort"); v != "" {
		q.SortKey = v
	}

	return q
}
