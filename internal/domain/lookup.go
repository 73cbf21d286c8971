package domain

// InputKind classifies a raw user query.
type InputKind string

const (
	KindTenantID InputKind = "tenantId"
	KindDomain   InputKind = "domain"
	KindEmail    InputKind = "email"
	KindUnknown  InputKind = "unknown"
)

// CloudEnvironment identifies the cloud instance a tenant lives in.
// The values are the user-facing labels, matching what the lookup
// responses carry.
type CloudEnvironment string

const (
	CloudCommercial CloudEnvironment = "Commercial"
	CloudGCCHigh    CloudEnvironment = "GCC High"
	CloudUnknown    CloudEnvironment = "Unknown"
)

// DiscoveryRecord holds the fields consumed from a tenant's OpenID
// Connect discovery document. TenantID is parsed out of the issuer URL;
// the discovery endpoint does not return it directly.
type DiscoveryRecord struct {
	Issuer                string
	TenantID              string
	AuthorizationEndpoint string
	TokenEndpoint         string
	UserInfoEndpoint      string
	TenantRegionScope     string
	Cloud                 CloudEnvironment
}

// VerifiedDomain is one entry of a tenant's verified domain list.
type VerifiedDomain struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsDefault bool   `json:"isDefault"`
}

// DirectoryRecord holds the organizational profile returned by the
// Graph tenant-information lookup. Only produced for Commercial
// tenants; the directory API is not reachable for sovereign clouds
// from a commercial-cloud credential.
type DirectoryRecord struct {
	TenantID          string           `json:"tenantId"`
	DisplayName       string           `json:"displayName"`
	DefaultDomainName string           `json:"defaultDomainName"`
	VerifiedDomains   []VerifiedDomain `json:"verifiedDomains"`
}

// RealmRecord holds per-user sign-in routing metadata from the user
// realm endpoint. FederationBrandName, AuthURL, FederationProtocol and
// CertAuthURL are optional and empty when the endpoint omits them.
type RealmRecord struct {
	Login                  string
	DomainName             string
	State                  int
	UserState              int
	NamespaceType          string
	FederationBrandName    string
	CloudInstanceName      string
	CloudInstanceIssuerURI string
	AuthURL                string
	FederationProtocol     string
	CertAuthURL            string
}

// TenantLookup is the merged outcome of a tenant or domain resolution.
// Directory is nil for non-Commercial tenants.
type TenantLookup struct {
	Discovery DiscoveryRecord
	Directory *DirectoryRecord
}

// DisplayName returns the tenant display name, empty when no directory
// enrichment happened.
func (t *TenantLookup) DisplayName() string {
	if t.Directory == nil {
		return ""
	}
	return t.Directory.DisplayName
}

// DefaultDomainName returns the verified default domain, empty when no
// directory enrichment happened.
func (t *TenantLookup) DefaultDomainName() string {
	if t.Directory == nil {
		return ""
	}
	return t.Directory.DefaultDomainName
}

// LookupResult is the single shape crossing the core/presentation
// boundary: one normalized result regardless of which resolver served
// the query. Kind discriminates which fields are populated.
type LookupResult struct {
	Kind InputKind

	TenantID          string
	DisplayName       string
	DefaultDomainName string
	Cloud             CloudEnvironment

	// OIDC extras, populated for tenant-id and domain lookups that
	// went through discovery.
	Issuer                string
	AuthorizationEndpoint string
	TokenEndpoint         string
	UserInfoEndpoint      string
	TenantRegionScope     string

	// Realm is set for email-kind results and for domain results
	// served by the realm fallback.
	Realm *RealmRecord
}

// AccessToken is a short-lived bearer token for the directory API.
// The token value must never be logged or persisted.
type AccessToken struct {
	Token     string
	ExpiresIn int64
}
