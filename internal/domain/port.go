package domain

import "context"

// DiscoveryClient fetches a tenant's OpenID Connect discovery document.
// The value may be a tenant id or a verified domain; the discovery
// endpoint accepts either as a path segment.
type DiscoveryClient interface {
	Discover(ctx context.Context, tenantOrDomain string) (*DiscoveryRecord, error)
}

// TokenSource acquires a bearer token for the directory API via
// client-credential exchange. No caching; every call hits the token
// endpoint.
type TokenSource interface {
	AcquireToken(ctx context.Context) (*AccessToken, error)
}

// DirectoryClient looks up organizational profile data for a tenant.
type DirectoryClient interface {
	FindTenantInformation(ctx context.Context, token *AccessToken, domainName string) (*DirectoryRecord, error)
}

// RealmClient resolves per-user sign-in routing metadata by email.
type RealmClient interface {
	ResolveRealm(ctx context.Context, login string) (*RealmRecord, error)
}
