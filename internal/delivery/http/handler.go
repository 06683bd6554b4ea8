package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shelfscout/backend/internal/domain"
	"github.com/shelfscout/backend/internal/usecase"
)

func init() {
	// Prices serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	engine *usecase.Engine
}

// NewHandler creates a new HTTP handler
func NewHandler(engine *usecase.Engine) *Handler {
	return &Handler{engine: engine}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	resp := gin.H{
		"status":  "healthy",
		"service": "shelfscout-backend",
		"version": "1.0.0",
	}
	if h.engine != nil {
		resp["indexed_aliases"] = h.engine.IndexStats()
	}
	c.JSON(http.StatusOK, resp)
}

// identifyRequest carries OCR-extracted text lines from the client.
type identifyRequest struct {
	Lines []string `json:"lines"`
}

// Identify handles photo identification requests
func (h *Handler) Identify(c *gin.Context) {
	var req identifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	candidate, err := h.engine.IdentifyByPhoto(c.Request.Context(), req.Lines)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// ComparePrices handles price comparison requests for a product
func (h *Handler) ComparePrices(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	coords, err := parseCoordinates(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.engine.ComparePrices(c.Request.Context(), productID, coords)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Suggest handles partial-text product suggestion requests
func (h *Handler) Suggest(c *gin.Context) {
	suggestions, err := h.engine.SuggestProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// Reindex rebuilds the alias index from the current catalog
func (h *Handler) Reindex(c *gin.Context) {
	if err := h.engine.Rebuild(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"indexed_aliases": h.engine.IndexStats()})
}

// parseCoordinates reads optional lat/lng query parameters. Both must be
// present together.
func parseCoordinates(c *gin.Context) (*domain.Coordinates, error) {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" && lngStr == "" {
		return nil, nil
	}
	if latStr == "" || lngStr == "" {
		return nil, errors.New("lat and lng must be supplied together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, errors.New("invalid lat")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, errors.New("invalid lng")
	}

	return &domain.Coordinates{Lat: lat, Lng: lng}, nil
}

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, domain.ErrInvalidCoordinates), errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCatalogUnavailable), errors.Is(err, domain.ErrPricingUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "upstream data source unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
