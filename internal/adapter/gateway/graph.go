package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tenant-hub/internal/domain"
)

// GraphGateway talks to the Microsoft Graph directory API.
// Implements domain.DirectoryClient.
type GraphGateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewGraphGateway creates a new Graph gateway.
func NewGraphGateway(baseURL string, timeout time.Duration) *GraphGateway {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	return &GraphGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// FindTenantInformation resolves a tenant's organizational profile via
// the tenantRelationships lookup. The function accepts a tenant id as
// the domainName argument; Graph treats both the same way. A
// non-success status is surfaced with Graph's own status code rather
// than degraded to a generic error.
func (g *GraphGateway) FindTenantInformation(ctx context.Context, token *domain.AccessToken, domainName string) (*domain.DirectoryRecord, error) {
	endpoint := fmt.Sprintf("%s/v1.0/tenantRelationships/findTenantInformationByDomainName(domainName='%s')", g.baseURL, domainName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGraphUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+token.Token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGraphUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.UpstreamStatusError{Err: domain.ErrDirectoryLookup, StatusCode: resp.StatusCode}
	}

	var record domain.DirectoryRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGraphUnavailable, err)
	}

	return &record, nil
}
