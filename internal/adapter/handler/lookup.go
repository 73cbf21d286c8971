package handler

import (
	"net/http"

	"tenant-hub/internal/domain"
	"tenant-hub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LookupHandler handles the unified /api/lookup endpoint: one free-form
// query string in, one tagged result out.
type LookupHandler struct {
	uc *usecase.UnifiedLookup
}

// NewLookupHandler creates a new unified lookup handler.
func NewLookupHandler(uc *usecase.UnifiedLookup) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// oidcEndpoints groups the per-tenant OIDC endpoints in the response.
type oidcEndpoints struct {
	Authorization string `json:"authorization"`
	Token         string `json:"token"`
	UserInfo      string `json:"userInfo"`
}

// tenantIDResponse is the unified response for tenant-id input.
type tenantIDResponse struct {
	ResponseType string        `json:"responseType"`
	TenantID     string        `json:"tenantId"`
	Cloud        string        `json:"cloud"`
	DisplayName  *string       `json:"displayName"`
	Issuer       string        `json:"issuer"`
	Endpoints    oidcEndpoints `json:"endpoints"`
	TenantRegion string        `json:"tenantRegion,omitempty"`
}

// domainResponse is the unified response for domain input.
type domainResponse struct {
	ResponseType      string  `json:"responseType"`
	TenantID          string  `json:"tenantId"`
	DefaultDomainName string  `json:"defaultDomainName"`
	Cloud             string  `json:"cloud"`
	DisplayName       *string `json:"displayName"`
}

// emailResponse is the unified response for email input, exposing the
// realm record directly.
type emailResponse struct {
	ResponseType        string `json:"responseType"`
	Login               string `json:"login"`
	DomainName          string `json:"domainName"`
	State               int    `json:"state"`
	UserState           int    `json:"userState"`
	NamespaceType       string `json:"namespaceType"`
	FederationBrandName string `json:"federationBrandName,omitempty"`
	CloudInstanceName   string `json:"cloudInstanceName,omitempty"`
	FederationProtocol  string `json:"federationProtocol,omitempty"`
}

// Handle processes the /api/lookup endpoint.
func (h *LookupHandler) Handle(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing query parameter")
	}

	result, err := h.uc.Execute(c.Request().Context(), query)
	if err != nil {
		return mapDomainError(err)
	}

	switch result.Kind {
	case domain.KindTenantID:
		return c.JSON(http.StatusOK, tenantIDResponse{
			ResponseType: string(result.Kind),
			TenantID:     result.TenantID,
			Cloud:        string(result.Cloud),
			DisplayName:  nullable(result.DisplayName),
			Issuer:       result.Issuer,
			Endpoints: oidcEndpoints{
				Authorization: result.AuthorizationEndpoint,
				Token:         result.TokenEndpoint,
				UserInfo:      result.UserInfoEndpoint,
			},
			TenantRegion: result.TenantRegionScope,
		})

	case domain.KindDomain:
		return c.JSON(http.StatusOK, domainResponse{
			ResponseType:      string(result.Kind),
			TenantID:          result.TenantID,
			DefaultDomainName: result.DefaultDomainName,
			Cloud:             string(result.Cloud),
			DisplayName:       nullable(result.DisplayName),
		})

	case domain.KindEmail:
		realm := result.Realm
		return c.JSON(http.StatusOK, emailResponse{
			ResponseType:        string(result.Kind),
			Login:               realm.Login,
			DomainName:          realm.DomainName,
			State:               realm.State,
			UserState:           realm.UserState,
			NamespaceType:       realm.NamespaceType,
			FederationBrandName: realm.FederationBrandName,
			CloudInstanceName:   realm.CloudInstanceName,
			FederationProtocol:  realm.FederationProtocol,
		})

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
