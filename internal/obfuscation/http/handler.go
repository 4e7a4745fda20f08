// Package http provides read-only HTTP handlers over the constant catalog.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	"github.com/allisson/constguard/internal/httputil"
	"github.com/allisson/constguard/internal/obfuscation/http/dto"
	"github.com/allisson/constguard/internal/obfuscation/usecase"
	customValidation "github.com/allisson/constguard/internal/validation"
)

// ConstantHandler handles HTTP requests that read obfuscated constants.
type ConstantHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         *slog.Logger
}

// NewConstantHandler creates a new constant handler with required dependencies.
func NewConstantHandler(catalogUseCase usecase.CatalogUseCase, logger *slog.Logger) *ConstantHandler {
	return &ConstantHandler{
		catalogUseCase: catalogUseCase,
		logger:         logger,
	}
}

// ListGroupsHandler lists registered groups and the constants they expose.
// GET /v1/groups
func (h *ConstantHandler) ListGroupsHandler(c *gin.Context) {
	groups := h.catalogUseCase.Groups(c.Request.Context())
	c.JSON(http.StatusOK, dto.MapGroupsToListResponse(groups))
}

// ListHandler decodes constants with pagination, optionally restricted to one group.
// GET /v1/constants?group=secure&offset=0&limit=50
func (h *ConstantHandler) ListHandler(c *gin.Context) {
	page, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	group := c.Query("group")
	if group != "" {
		if err := validatePathSegment("group", group); err != nil {
			httputil.HandleValidationErrorGin(c, err, h.logger)
			return
		}
	}

	values, err := h.catalogUseCase.List(c.Request.Context(), group)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValuesToListResponse(httputil.Paginate(values, page)))
}

// GetHandler decodes a single constant.
// GET /v1/constants/:group/:name
func (h *ConstantHandler) GetHandler(c *gin.Context) {
	group := c.Param("group")
	name := c.Param("name")

	if err := validatePathSegment("group", group); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := validatePathSegment("name", name); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	value, err := h.catalogUseCase.Get(c.Request.Context(), group, name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValueToResponse(value))
}

func validatePathSegment(field, value string) error {
	if err := validation.Validate(value, validation.Required, customValidation.PathSegment); err != nil {
		return customValidation.WrapValidationError(fmt.Errorf("%s: %w", field, err))
	}
	return nil
}
