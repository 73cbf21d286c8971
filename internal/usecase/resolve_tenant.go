package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"tenant-hub/internal/domain"
	"tenant-hub/internal/infrastructure/token"
)

// ResolveTenant resolves a tenant id or verified domain into discovery
// metadata, enriched with the organizational profile from the
// directory API when the tenant lives in the Commercial cloud.
type ResolveTenant struct {
	discovery domain.DiscoveryClient
	tokens    domain.TokenSource
	directory domain.DirectoryClient
	logger    *slog.Logger
}

// NewResolveTenant creates a new ResolveTenant usecase.
func NewResolveTenant(disc domain.DiscoveryClient, ts domain.TokenSource, dir domain.DirectoryClient, l *slog.Logger) *ResolveTenant {
	return &ResolveTenant{discovery: disc, tokens: ts, directory: dir, logger: l}
}

// Execute runs the two-step resolution: unauthenticated discovery
// first, then the authenticated directory lookup for Commercial
// tenants only. Sovereign-cloud tenants return a partial outcome with
// no directory record; the directory API is not reachable for them
// from a commercial-cloud credential.
func (uc *ResolveTenant) Execute(ctx context.Context, value string) (*domain.TenantLookup, error) {
	record, err := uc.discovery.Discover(ctx, value)
	if err != nil {
		return nil, err
	}

	tenantID, err := domain.TenantIDFromIssuer(record.Issuer)
	if err != nil {
		uc.logger.WarnContext(ctx, "unexpected issuer shape in discovery document",
			"issuer", record.Issuer,
			"error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrTenantNotFound, err)
	}

	record.TenantID = tenantID
	record.Cloud = domain.CloudFromRegionScope(record.TenantRegionScope)

	if record.Cloud != domain.CloudCommercial {
		uc.logger.InfoContext(ctx, "sovereign cloud tenant, skipping directory enrichment",
			"tenant_id", tenantID,
			"cloud", record.Cloud,
			"region_scope", record.TenantRegionScope)
		return &domain.TenantLookup{Discovery: *record}, nil
	}

	accessToken, err := uc.tokens.AcquireToken(ctx)
	if err != nil {
		return nil, err
	}

	// Claims peek is best effort; the token works the same if opaque.
	if claims, peekErr := token.Peek(accessToken.Token); peekErr == nil {
		uc.logger.DebugContext(ctx, "access token acquired",
			"home_tenant", claims.TenantID,
			"expires_at", claims.ExpiresAt)
	}

	directory, err := uc.directory.FindTenantInformation(ctx, accessToken, tenantID)
	if err != nil {
		return nil, err
	}

	return &domain.TenantLookup{Discovery: *record, Directory: directory}, nil
}
