package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// TenantIDFromIssuer extracts the canonical tenant id from a discovery
// issuer URL such as "https://sts.windows.net/{tenantId}/". The tenant
// id is the first path segment; the discovery document has no dedicated
// field for it, so this parse is the only source. Returns
// ErrMalformedIssuer when the issuer does not have that shape.
func TenantIDFromIssuer(issuer string) (string, error) {
	u, err := url.Parse(issuer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedIssuer, err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return "", fmt.Errorf("%w: no path segment in %q", ErrMalformedIssuer, issuer)
	}

	tenantID := segments[0]
	if Classify(tenantID) != KindTenantID {
		return "", fmt.Errorf("%w: first path segment %q is not a tenant id", ErrMalformedIssuer, tenantID)
	}
	return tenantID, nil
}

// CloudFromRegionScope maps the discovery document's
// tenant_region_scope to a cloud environment. "USGov" is the only
// sovereign-cloud signal the discovery endpoint exposes; every other
// value, including absent, means Commercial.
func CloudFromRegionScope(scope string) CloudEnvironment {
	if scope == "USGov" {
		return CloudGCCHigh
	}
	return CloudCommercial
}

// CloudFromInstanceName maps a realm record's CloudInstanceName to a
// cloud label, defaulting to Commercial when absent. The realm
// endpoint gives no region-scope equivalent, so a sovereign account
// reached via email lookup can still be labeled Commercial here; the
// discovery path is the authoritative signal when both are available.
func CloudFromInstanceName(name string) CloudEnvironment {
	if name == "" {
		return CloudCommercial
	}
	return CloudEnvironment(name)
}
