package domain

import "regexp"

// Classification patterns, checked in precedence order. A canonical
// UUID wins over everything, an email shape wins over a bare domain.
var (
	tenantIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	domainPattern   = regexp.MustCompile(`^(?i)(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z][a-z0-9-]{0,61}[a-z0-9]$`)
)

// Classify decides whether raw looks like a tenant id (UUID), an email
// address, or a domain name. It never errors; anything unrecognized,
// including the empty string, is KindUnknown.
func Classify(raw string) InputKind {
	switch {
	case tenantIDPattern.MatchString(raw):
		return KindTenantID
	case emailPattern.MatchString(raw):
		return KindEmail
	case domainPattern.MatchString(raw):
		return KindDomain
	default:
		return KindUnknown
	}
}
