package handler

import (
	"net/http"

	"tenant-hub/internal/domain"
	"tenant-hub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// tenantInfoResponse is the flattened shape shared by the per-kind
// /api/tenant, /api/domain and /api/email routes.
type tenantInfoResponse struct {
	DisplayName       *string `json:"displayName"`
	DefaultDomainName *string `json:"defaultDomainName"`
	TenantID          string  `json:"tenantId"`
	Cloud             string  `json:"cloud"`
}

// TenantHandler handles /api/tenant lookups by tenant id.
type TenantHandler struct {
	uc usecase.TenantResolver
}

// NewTenantHandler creates a new tenant handler.
func NewTenantHandler(uc usecase.TenantResolver) *TenantHandler {
	return &TenantHandler{uc: uc}
}

// Handle processes the /api/tenant endpoint. Sovereign tenants come
// back with null displayName/defaultDomainName but a resolved tenant
// id and cloud label.
func (h *TenantHandler) Handle(c echo.Context) error {
	tenantID := c.QueryParam("id")
	if domain.Classify(tenantID) != domain.KindTenantID {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tenant ID format")
	}

	lookup, err := h.uc.Execute(c.Request().Context(), tenantID)
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
