package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tenant-hub/config"
	"tenant-hub/internal/domain"
)

// LoginGateway talks to the login host: tenant discovery documents,
// user realm lookups and the OAuth2 token endpoint all live there.
// Implements domain.DiscoveryClient, domain.RealmClient and
// domain.TokenSource.
type LoginGateway struct {
	baseURL    string
	creds      config.Credentials
	httpClient *http.Client
}

// NewLoginGateway creates a new login gateway with tuned HTTP transport.
func NewLoginGateway(baseURL string, creds config.Credentials, timeout time.Duration) *LoginGateway {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	return &LoginGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// discoveryPayload is the subset of the OpenID Connect discovery
// document the resolver consumes.
type discoveryPayload struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	UserInfoEndpoint      string `json:"userinfo_endpoint"`
	TenantRegionScope     string `json:"tenant_region_scope"`
}

// Discover fetches the discovery document for a tenant id or verified
// domain. A non-success status means the tenant does not exist as far
// as the discovery endpoint is concerned.
func (g *LoginGateway) Discover(ctx context.Context, tenantOrDomain string) (*domain.DiscoveryRecord, error) {
	endpoint := fmt.Sprintf("%s/%s/.well-known/openid-configuration", g.baseURL, url.PathEscape(tenantOrDomain))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLoginUnavailable, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLoginUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: discovery returned status %d", domain.ErrTenantNotFound, resp.StatusCode)
	}

	var payload discoveryPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMissingDiscovery, err)
	}

	if payload.Issuer == "" {
		return nil, fmt.Errorf("%w: issuer absent", domain.ErrMissingDiscovery)
	}

	return &domain.DiscoveryRecord{
		Issuer:                payload.Issuer,
		AuthorizationEndpoint: payload.AuthorizationEndpoint,
		TokenEndpoint:         payload.TokenEndpoint,
		UserInfoEndpoint:      payload.UserInfoEndpoint,
		TenantRegionScope:     payload.TenantRegionScope,
	}, nil
}

// realmPayload mirrors the GetUserRealm.srf response body.
type realmPayload struct {
	State                  int    `json:"State"`
	UserState              int    `json:"UserState"`
	Login                  string `json:"Login"`
	NameSpaceType          string `json:"NameSpaceType"`
	DomainName             string `json:"DomainName"`
	FederationBrandName    string `json:"FederationBrandName"`
	CloudInstanceName      string `json:"CloudInstanceName"`
	CloudInstanceIssuerURI string `json:"CloudInstanceIssuerUri"`
	AuthURL                string `json:"AuthURL"`
	FederationProtocol     string `json:"FederationProtocol"`
	CertAuthURL            string `json:"CertAuthUrl"`
}

// ResolveRealm fetches sign-in routing metadata for an email address.
// Optional fields stay empty when the endpoint omits them.
func (g *LoginGateway) ResolveRealm(ctx context.Context, login string) (*domain.RealmRecord, error) {
	endpoint := fmt.Sprintf("%s/GetUserRealm.srf?login=%s", g.baseURL, url.QueryEscape(login))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLoginUnavailable, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLoginUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: realm endpoint returned status %d", domain.ErrRealmNotFound, resp.StatusCode)
	}

	var payload realmPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRealmNotFound, err)
	}

	return &domain.RealmRecord{
		Login:                  payload.Login,
		DomainName:             payload.DomainName,
		State:                  payload.State,
		UserState:              payload.UserState,
		NamespaceType:          payload.NameSpaceType,
		FederationBrandName:    payload.FederationBrandName,
		CloudInstanceName:      payload.CloudInstanceName,
		CloudInstanceIssuerURI: payload.CloudInstanceIssuerURI,
		AuthURL:                payload.AuthURL,
		FederationProtocol:     payload.FederationProtocol,
		CertAuthURL:            payload.CertAuthURL,
	}, nil
}

// graphScope is the fixed scope for the client-credential exchange,
// pinned to the directory API's default permission set.
const graphScope = "https://graph.microsoft.com/.default"

// tokenPayload is the token endpoint's success response.
type tokenPayload struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AcquireToken performs a client-credentials grant against the home
// tenant's token endpoint. The token is returned to the caller and
// never cached here; reuse is the caller's concern.
func (g *LoginGateway) AcquireToken(ctx context.Context) (*domain.AccessToken, error) {
	if !g.creds.Complete() {
		return nil, domain.ErrCredentialsMissing
	}

	form := url.Values{}
	form.Set("client_id", g.creds.ClientID)
	form.Set("client_secret", g.creds.ClientSecret)
	form.Set("scope", graphScope)
	form.Set("grant_type", "client_credentials")

	endpoint := fmt.Sprintf("%s/%s/oauth2/v2.0/token", g.baseURL, url.PathEscape(g.creds.HomeTenantID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLoginUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLoginUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: token endpoint returned status %d", domain.ErrAuthRejected, resp.StatusCode)
	}

	var payload tokenPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthRejected, err)
	}

	if payload.AccessToken == "" {
		return nil, fmt.Errorf("%w: empty access_token in response", domain.ErrAuthRejected)
	}

	return &domain.AccessToken{
		Token:     payload.AccessToken,
		ExpiresIn: payload.ExpiresIn,
	}, nil
}
