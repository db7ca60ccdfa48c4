package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lettora/lettora-backend/internal/delivery/http/middleware"
	"github.com/lettora/lettora-backend/internal/domain"
	"github.com/lettora/lettora-backend/internal/usecase/property"
)

type PropertyHandler struct {
	propertyUseCase *property.UseCase
}

func NewPropertyHandler(propertyUseCase *property.UseCase) *PropertyHandler {
	return &PropertyHandler{propertyUseCase: propertyUseCase}
}

// CreateProperty handles POST /properties
// @Summary Create a listing (starts as pending)
// @Tags properties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body property.CreatePropertyRequest true "Listing data"
// @Success 201 {object} domain.Property
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	landlordID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorBody("unauthorized"))
		return
	}

	var req property.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	created, err := h.propertyUseCase.Create(c.Request.Context(), landlordID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("failed to create property"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "property": created})
}

// GetProperty handles GET /properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid property id"))
		return
	}

	p, err := h.propertyUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, errorBody("property not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorBody("failed to get property"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "property": p})
}

// ListProperties handles GET /properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	q := property.ListPropertiesQuery{Limit: domain.DefaultLimit}

	if raw := c.Query("status"); raw != "" {
		status := domain.PropertyStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, errorBody("invalid status"))
			return
		}
		q.Status = &status
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorBody("limit must be an integer"))
			return
		}
		q.Limit = v
	}
	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorBody("offset must be an integer"))
			return
		}
		q.Offset = v
	}

	properties, err := h.propertyUseCase.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("failed to list properties"))
		return
	}
	if properties == nil {
		properties = []*domain.Property{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "properties": properties})
}

// UpdatePropertyStatus handles PATCH /properties/:id/status
func (h *PropertyHandler) UpdatePropertyStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid property id"))
		return
	}

	var req struct {
		Status domain.PropertyStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	updated, err := h.propertyUseCase.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, errorBody("property not found"))
		case errors.Is(err, domain.ErrInvalidStatusTransition):
			c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, errorBody("failed to update status"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "property": updated})
}
