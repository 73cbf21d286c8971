package usecase

import (
	"context"
	"log/slog"

	"tenant-hub/internal/domain"
)

// ResolveRealm resolves per-user sign-in routing metadata for an email
// address. Single unauthenticated call, no retry.
type ResolveRealm struct {
	realms domain.RealmClient
	logger *slog.Logger
}

// NewResolveRealm creates a new ResolveRealm usecase.
func NewResolveRealm(rc domain.RealmClient, l *slog.Logger) *ResolveRealm {
	return &ResolveRealm{realms: rc, logger: l}
}

// Execute looks up the realm for login. The record is returned as the
// endpoint reported it; defaulting of absent fields is the caller's
// normalization concern.
func (uc *ResolveRealm) Execute(ctx context.Context, login string) (*domain.RealmRecord, error) {
	realm, err := uc.realms.ResolveRealm(ctx, login)
	if err != nil {
		return nil, err
	}

	uc.logger.DebugContext(ctx, "realm resolved",
		"domain", realm.DomainName,
		"namespace_type", realm.NamespaceType)

	return realm, nil
}
