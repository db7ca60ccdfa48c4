package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lettora/lettora-backend/internal/delivery/http/middleware"
	"github.com/lettora/lettora-backend/internal/domain"
	"github.com/lettora/lettora-backend/internal/usecase/preference"
)

type PreferenceHandler struct {
	preferenceUseCase *preference.UseCase
}

func NewPreferenceHandler(preferenceUseCase *preference.UseCase) *PreferenceHandler {
	return &PreferenceHandler{preferenceUseCase: preferenceUseCase}
}

// GetMyPreferences handles GET /preferences/me
// @Summary Get the caller's active preference profile
// @Tags preferences
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.PreferenceProfile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /preferences/me [get]
func (h *PreferenceHandler) GetMyPreferences(c *gin.Context) {
	investorID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorBody("unauthorized"))
		return
	}

	profile, err := h.preferenceUseCase.GetActive(c.Request.Context(), investorID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, errorBody("no active preference profile"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorBody("failed to get preferences"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "preferences": profile})
}

// UpsertMyPreferences handles PUT /preferences/me
// @Summary Replace the caller's active preference profile
// @Tags preferences
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body preference.UpsertPreferencesRequest true "Preference criteria"
// @Success 200 {object} domain.PreferenceProfile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /preferences/me [put]
func (h *PreferenceHandler) UpsertMyPreferences(c *gin.Context) {
	investorID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorBody("unauthorized"))
		return
	}

	var req preference.UpsertPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	profile, err := h.preferenceUseCase.Upsert(c.Request.Context(), investorID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCriteria) {
			c.JSON(http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, errorBody("failed to save preferences"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "preferences": profile})
}
