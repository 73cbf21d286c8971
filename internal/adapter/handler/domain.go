package handler

import (
	"net/http"

	"tenant-hub/internal/domain"
	"tenant-hub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DomainHandler handles /api/domain lookups by verified domain name.
// Unlike the unified route, this one does not fall back to a realm
// lookup when discovery fails.
type DomainHandler struct {
	uc usecase.TenantResolver
}

// NewDomainHandler creates a new domain handler.
func NewDomainHandler(uc usecase.TenantResolver) *DomainHandler {
	return &DomainHandler{uc: uc}
}

// Handle processes the /api/domain endpoint.
func (h *DomainHandler) Handle(c echo.Context) error {
	domainName := c.QueryParam("domain")
	if domain.Classify(domainName) != domain.KindDomain {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tenant domain format")
	}

	lookup, err := h.uc.Execute(c.Request().Context(), domainName)
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, tenantInfoResponse{
		DisplayName:       nullable(lookup.DisplayName()),
		DefaultDomainName: nullable(lookup.DefaultDomainName()),
		TenantID:          lookup.Discovery.TenantID,
		Cloud:             string(lookup.Discovery.Cloud),
	})
}
