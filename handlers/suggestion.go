package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medibook/services/suggestion"
	"medibook/utils"
)

// SuggestionHandler exposes the shared city autocomplete service.
type SuggestionHandler struct {
	service *suggestion.Service
}

func NewSuggestionHandler(service *suggestion.Service) *SuggestionHandler {
	return &SuggestionHandler{service: service}
}

// SuggestCities returns suggestions for a query prefix.
func (h *SuggestionHandler) SuggestCities(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query", "query parameter q is required")
		return
	}

	cities, err := h.service.Suggest(c.Request.Context(), query)
	if err != nil {
		getLogger(c).Error("suggestion lookup failed", zap.String("query", query), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to load suggestions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": cities})
}

// ClearCities drops the suggestion cache so the next lookup refetches.
func (h *SuggestionHandler) ClearCities(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear suggestions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
