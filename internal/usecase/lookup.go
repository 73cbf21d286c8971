package usecase

import (
	"context"
	"log/slog"
	"strings"

	"tenant-hub/internal/domain"
)

// TenantResolver resolves a tenant id or domain into a merged lookup
// outcome. Satisfied by *ResolveTenant.
type TenantResolver interface {
	Execute(ctx context.Context, value string) (*domain.TenantLookup, error)
}

// RealmResolver resolves an email address into realm metadata.
// Satisfied by *ResolveRealm.
type RealmResolver interface {
	Execute(ctx context.Context, login string) (*domain.RealmRecord, error)
}

// UnifiedLookup accepts any of the three input kinds and dispatches to
// the right resolver, owning the cross-kind fallback policy: a domain
// whose discovery fails is retried once through the realm endpoint
// with a synthesized address, because federated sign-in domains are
// often not independently discoverable.
type UnifiedLookup struct {
	tenants TenantResolver
	realms  RealmResolver
	logger  *slog.Logger
}

// NewUnifiedLookup creates a new UnifiedLookup usecase.
func NewUnifiedLookup(t TenantResolver, r RealmResolver, l *slog.Logger) *UnifiedLookup {
	return &UnifiedLookup{tenants: t, realms: r, logger: l}
}

// Execute classifies raw and resolves it to a normalized result.
// Single pass, no retries: every resolver error other than the
// documented domain fallback surfaces to the caller.
func (uc *UnifiedLookup) Execute(ctx context.Context, raw string) (*domain.LookupResult, error) {
	query := strings.TrimSpace(raw)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	kind := domain.Classify(query)

	switch kind {
	case domain.KindTenantID:
		lookup, err := uc.tenants.Execute(ctx, query)
		if err != nil {
			return nil, err
		}
		return tenantIDResult(lookup), nil

	case domain.KindDomain:
		lookup, err := uc.tenants.Execute(ctx, query)
		if err == nil {
			return domainResult(lookup, query), nil
		}

		uc.logger.InfoContext(ctx, "tenant resolution failed for domain, falling back to realm lookup",
			"domain", query,
			"error", err)

		realm, realmErr := uc.realms.Execute(ctx, "user@"+query)
		if realmErr != nil {
			return nil, realmErr
		}
		return realmDomainResult(realm), nil

	case domain.KindEmail:
		realm, err := uc.realms.Execute(ctx, query)
		if err != nil {
			return nil, err
		}
		return emailResult(realm), nil

	default:
		return nil, domain.ErrUnrecognizedInput
	}
}

// tenantIDResult exposes the full OIDC surface alongside the directory
// profile; tenant-id callers asked about the tenant itself.
func tenantIDResult(lookup *domain.TenantLookup) *domain.LookupResult {
	d := lookup.Discovery
	return &domain.LookupResult{
		Kind:                  domain.KindTenantID,
		TenantID:              d.TenantID,
		DisplayName:           lookup.DisplayName(),
		DefaultDomainName:     lookup.DefaultDomainName(),
		Cloud:                 d.Cloud,
		Issuer:                d.Issuer,
		AuthorizationEndpoint: d.AuthorizationEndpoint,
		TokenEndpoint:         d.TokenEndpoint,
		UserInfoEndpoint:      d.UserInfoEndpoint,
		TenantRegionScope:     d.TenantRegionScope,
	}
}

// domainResult echoes the queried domain as the default domain, even
// when the directory knows a different canonical one.
func domainResult(lookup *domain.TenantLookup, query string) *domain.LookupResult {
	return &domain.LookupResult{
		Kind:              domain.KindDomain,
		TenantID:          lookup.Discovery.TenantID,
		DisplayName:       lookup.DisplayName(),
		DefaultDomainName: query,
		Cloud:             lookup.Discovery.Cloud,
	}
}

// realmDomainResult relabels a realm lookup as a domain-kind result
// for the fallback path. No tenant id is available on this path.
func realmDomainResult(realm *domain.RealmRecord) *domain.LookupResult {
	displayName := realm.FederationBrandName
	if displayName == "" {
		displayName = realm.DomainName
	}

	return &domain.LookupResult{
		Kind:              domain.KindDomain,
		DisplayName:       displayName,
		DefaultDomainName: realm.DomainName,
		Cloud:             domain.CloudFromInstanceName(realm.CloudInstanceName),
		Realm:             realm,
	}
}

func emailResult(realm *domain.RealmRecord) *domain.LookupResult {
	displayName := realm.FederationBrandName
	if displayName == "" {
		displayName = realm.DomainName
	}

	return &domain.LookupResult{
		Kind:              domain.KindEmail,
		DisplayName:       displayName,
		DefaultDomainName: realm.DomainName,
		Cloud:             domain.CloudFromInstanceName(realm.CloudInstanceName),
		Realm:             realm,
	}
}
