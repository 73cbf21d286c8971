package handler

import (
	"errors"
	"net/http"

	"tenant-hub/internal/domain"

	"github.com/labstack/echo/v4"
)

// mapDomainError converts a domain error into an appropriate echo.HTTPError.
func mapDomainError(err error) *echo.HTTPError {
	// The directory API's own status code passes through verbatim.
	var statusErr *domain.UpstreamStatusError
	if errors.As(err, &statusErr) {
		return echo.NewHTTPError(statusErr.StatusCode, "directory lookup failed")
	}

	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		return echo.NewHTTPError(http.StatusBadRequest, "query must not be empty")

	case errors.Is(err, domain.ErrUnrecognizedInput):
		return echo.NewHTTPError(http.StatusBadRequest, "unrecognized input format")

	case errors.Is(err, domain.ErrTenantNotFound),
		errors.Is(err, domain.ErrMalformedIssuer),
		errors.Is(err, domain.ErrMissingDiscovery),
		errors.Is(err, domain.ErrRealmNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "tenant, domain or user not found")

	case errors.Is(err, domain.ErrCredentialsMissing):
		return echo.NewHTTPError(http.StatusInternalServerError, "internal configuration error")

	case errors.Is(err, domain.ErrAuthRejected),
		errors.Is(err, domain.ErrLoginUnavailable),
		errors.Is(err, domain.ErrGraphUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, "identity provider unavailable")

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

// nullable maps empty strings to JSON null, matching the lookup
// responses' use of null for fields the resolution could not fill.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
