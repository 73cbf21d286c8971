package handler

import (
	"net/http"

	"tenant-hub/internal/domain"
	"tenant-hub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// EmailHandler handles /api/email lookups, flattening the realm record
// into the shared tenant-info shape.
type EmailHandler struct {
	uc usecase.RealmResolver
}

// NewEmailHandler creates a new email handler.
func NewEmailHandler(uc usecase.RealmResolver) *EmailHandler {
	return &EmailHandler{uc: uc}
}

// Handle processes the /api/email endpoint. The realm endpoint has no
// tenant id to offer, so that field is always empty here.
func (h *EmailHandler) Handle(c echo.Context) error {
	email := c.QueryParam("email")
	if domain.Classify(email) != domain.KindEmail {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid email format")
	}

	realm, err := h.uc.Execute(c.Request().Context(), email)
	if err != nil {
		return mapDomainError(err)
	}

	displayName := realm.FederationBrandName
	if displayName == "" {
		displayName = realm.DomainName
	}

	return c.JSON(http.StatusOK, tenantInfoResponse{
		DisplayName:       nullable(displayName),
		DefaultDomainName: nullable(realm.DomainName),
		TenantID:          "",
		Cloud:             string(domain.CloudFromInstanceName(realm.CloudInstanceName)),
	})
}
