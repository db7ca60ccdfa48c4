package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lettora/lettora-backend/internal/delivery/http/middleware"
	"github.com/lettora/lettora-backend/internal/domain"
	"github.com/lettora/lettora-backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.UseCase
}

func NewMatchHandler(matchUseCase *match.UseCase) *MatchHandler {
	return &MatchHandler{matchUseCase: matchUseCase}
}

// MatchedPropertiesResponse is the investor-facing result page.
type MatchedPropertiesResponse struct {
	Success        bool                   `json:"success"`
	Properties     []domain.PropertyMatch `json:"properties"`
	Total          int                    `json:"total"`
	HasPreferences bool                   `json:"has_preferences"`
	Preferences    *domain.Criteria       `json:"preferences,omitempty"`
}

// MatchedInvestorsResponse is the landlord/admin-facing result page.
type MatchedInvestorsResponse struct {
	Success   bool                   `json:"success"`
	Investors []domain.InvestorMatch `json:"investors"`
	Total     int                    `json:"total"`
}

// GetMatchedProperties handles GET /matches/properties
// @Summary Properties matching the caller's preferences
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param min_score query int false "Minimum match score (default 60)"
// @Param limit query int false "Page size (default 20, max 50)"
// @Param page query int false "1-based page number"
// @Param offset query int false "Explicit offset, overrides page"
// @Success 200 {object} MatchedPropertiesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/properties [get]
func (h *MatchHandler) GetMatchedProperties(c *gin.Context) {
	investorID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorBody("unauthorized"))
		return
	}

	// Admins may inspect any investor's matches.
	if raw := c.Query("investor_id"); raw != "" {
		if c.GetString(middleware.ContextRole) != middleware.RoleAdmin {
			c.JSON(http.StatusForbidden, errorBody("forbidden"))
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorBody("invalid investor_id"))
			return
		}
		investorID = id
	}

	query, err := parseMatchQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	page, err := h.matchUseCase.MatchPropertiesForInvestor(c.Request.Context(), investorID, query)
	if err != nil {
		writeMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, MatchedPropertiesResponse{
		Success:        true,
		Properties:     page.Properties,
		Total:          page.Total,
		HasPreferences: page.HasPreferences,
		Preferences:    page.Preferences,
	})
}

// GetMatchedInvestors handles GET /properties/:id/matched-investors
// @Summary Investors whose preferences match a property
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path string true "Property ID"
// @Param min_score query int false "Minimum match score (default 60)"
// @Success 200 {object} MatchedInvestorsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /properties/{id}/matched-investors [get]
func (h *MatchHandler) GetMatchedInvestors(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid property id"))
		return
	}

	query, err := parseMatchQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	page, err := h.matchUseCase.MatchInvestorsForProperty(c.Request.Context(), propertyID, query)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, errorBody("property not found"))
			return
		}
		writeMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, MatchedInvestorsResponse{
		Success:   true,
		Investors: page.Investors,
		Total:     page.Total,
	})
}

// parseMatchQuery reads min_score/limit/page/offset, applying the documented
// defaults. Oversized limits are capped at the maximum page size; everything
// else flows through so the usecase rejects it as ErrInvalidQuery.
func parseMatchQuery(c *gin.Context) (domain.MatchQuery, error) {
	query := domain.DefaultMatchQuery()

	if raw := c.Query("min_score"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return query, errors.New("min_score must be an integer")
		}
		query.MinScore = v
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return query, errors.New("limit must be an integer")
		}
		if v > domain.MaxLimit {
			v = domain.MaxLimit
		}
		query.Limit = v
	}
	if raw := c.Query("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return query, errors.New("page must be a positive integer")
		}
		query.Offset = (v - 1) * query.Limit
	}
	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return query, errors.New("offset must be an integer")
		}
		query.Offset = v
	}
	return query, nil
}

func writeMatchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, domain.ErrProfileLookup), errors.Is(err, domain.ErrCatalogLookup):
		c.JSON(http.StatusInternalServerError, errorBody("matching temporarily unavailable"))
	default:
		c.JSON(http.StatusInternalServerError, errorBody("internal error"))
	}
}
