package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tenant-hub/internal/domain"
	"tenant-hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenantID = "11111111-2222-3333-4444-555555555555"

// stubTenantResolver implements usecase.TenantResolver for testing.
type stubTenantResolver struct {
	lookup *domain.TenantLookup
	err    error
}

func (s *stubTenantResolver) Execute(_ context.Context, _ string) (*domain.TenantLookup, error) {
	return s.lookup, s.err
}

// stubRealmResolver implements usecase.RealmResolver for testing.
type stubRealmResolver struct {
	realm *domain.RealmRecord
	err   error
}

func (s *stubRealmResolver) Execute(_ context.Context, _ string) (*domain.RealmRecord, error) {
	return s.realm, s.err
}

func commercialLookup() *domain.TenantLookup {
	return &domain.TenantLookup{
		Discovery: domain.DiscoveryRecord{
			Issuer:                "https://sts.windows.net/" + testTenantID + "/",
			TenantID:              testTenantID,
			AuthorizationEndpoint: "https://login.microsoftonline.com/x/oauth2/v2.0/authorize",
			TokenEndpoint:         "https://login.microsoftonline.com/x/oauth2/v2.0/token",
			UserInfoEndpoint:      "https://graph.microsoft.com/oidc/userinfo",
			Cloud:                 domain.CloudCommercial,
		},
		Directory: &domain.DirectoryRecord{
			TenantID:          testTenantID,
			DisplayName:       "Contoso",
			DefaultDomainName: "contoso.com",
		},
	}
}

func lookupRequest(t *testing.T, h *LookupHandler, query string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/lookup?query="+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h.Handle(c)
}

func TestLookupHandler_MissingQuery(t *testing.T) {
	uc := usecase.NewUnifiedLookup(&stubTenantResolver{}, &stubRealmResolver{}, slog.Default())
	h := NewLookupHandler(uc)

	_, err := lookupRequest(t, h, "")

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestLookupHandler_TenantIDResult(t *testing.T) {
	uc := usecase.NewUnifiedLookup(&stubTenantResolver{lookup: commercialLookup()}, &stubRealmResolver{}, slog.Default())
	h := NewLookupHandler(uc)

	rec, err := lookupRequest(t, h, testTenantID)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "tenantId", body["responseType"])
	assert.Equal(t, testTenantID, body["tenantId"])
	assert.Equal(t, "Commercial", body["cloud"])
	assert.Equal(t, "Contoso", body["displayName"])
	assert.Equal(t, "https://sts.windows.net/"+testTenantID+"/", body["issuer"])

	endpoints, ok := body["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://login.microsoftonline.com/x/oauth2/v2.0/authorize", endpoints["authorization"])
	assert.Equal(t, "https://graph.microsoft.com/oidc/userinfo", endpoints["userInfo"])
}

func TestLookupHandler_SovereignTenantHasNullDisplayName(t *testing.T) {
	lookup := commercialLookup()
	lookup.Directory = nil
	lookup.Discovery.Cloud = domain.CloudGCCHigh
	lookup.Discovery.TenantRegionScope = "USGov"

	uc := usecase.NewUnifiedLookup(&stubTenantResolver{lookup: lookup}, &stubRealmResolver{}, slog.Default())
	h := NewLookupHandler(uc)

	rec, err := lookupRequest(t, h, testTenantID)

	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "GCC High", body["cloud"])
	assert.Equal(t, "USGov", body["tenantRegion"])
	assert.Contains(t, body, "displayName")
	assert.Nil(t, body["displayName"])
}

func TestLookupHandler_DomainResult(t *testing.T) {
	uc := usecase.NewUnifiedLookup(&stubTenantResolver{lookup: commercialLookup()}, &stubRealmResolver{}, slog.Default())
	h := NewLookupHandler(uc)

	rec, err := lookupRequest(t, h, "contoso.com")

	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "domain", body["responseType"])
	assert.Equal(t, testTenantID, body["tenantId"])
	assert.Equal(t, "contoso.com", body["defaultDomainName"])
	assert.Equal(t, "Contoso", body["displayName"])
	assert.Equal(t, "Commercial", body["cloud"])
}

func TestLookupHandler_DomainFallbackResult(t *testing.T) {
	realm := &domain.RealmRecord{
		Login:               "user@federated.example",
		DomainName:          "federated.example",
		NamespaceType:       "Federated",
		FederationBrandName: "Federated Example Corp",
	}
	uc := usecase.NewUnifiedLookup(
		&stubTenantResolver{err: domain.ErrTenantNotFound},
		&stubRealmResolver{realm: realm},
		slog.Default())
	h := NewLookupHandler(uc)

	rec, err := lookupRequest(t, h, "federated.example")

	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "domain", body["responseType"])
	assert.Equal(t, "", body["tenantId"])
	assert.Equal(t, "Federated Example Corp", body["displayName"])
}

func TestLookupHandler_EmailResult(t *testing.T) {
	realm := &domain.RealmRecord{
		Login:              "user@contoso.com",
		DomainName:         "contoso.com",
		State:              4,
		UserState:          1,
		NamespaceType:      "Federated",
		FederationProtocol: "WSTrust",
	}
	uc := usecase.NewUnifiedLookup(&stubTenantResolver{}, &stubRealmResolver{realm: realm}, slog.Default())
	h := NewLookupHandler(uc)

	rec, err := lookupRequest(t, h, "user@contoso.com")

	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "email", body["responseType"])
	assert.Equal(t, "user@contoso.com", body["login"])
	assert.Equal(t, "contoso.com", body["domainName"])
	assert.Equal(t, float64(4), body["state"])
	assert.Equal(t, "Federated", body["namespaceType"])
	assert.Equal(t, "WSTrust", body["federationProtocol"])
}

func TestLookupHandler_UnrecognizedInput(t *testing.T) {
	uc := usecase.NewUnifiedLookup(&stubTenantResolver{}, &stubRealmResolver{}, slog.Default())
	h := NewLookupHandler(uc)

	_, err := lookupRequest(t, h, "not-a-thing")

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
