package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the non-sensitive claims peeked from an acquired Graph
// access token, used only for log enrichment.
type Claims struct {
	TenantID  string
	AppID     string
	ExpiresAt time.Time
}

// Peek extracts claims from an access token without verifying its
// signature. The token was just received from the token endpoint over
// TLS, so its contents are trusted for logging purposes; this must
// never be used to authenticate inbound requests.
func Peek(accessToken string) (*Claims, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}

	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}

	peeked := &Claims{}
	if tid, ok := claims["tid"].(string); ok {
		peeked.TenantID = tid
	}
	if appID, ok := claims["appid"].(string); ok {
		peeked.AppID = appID
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		peeked.ExpiresAt = exp.Time
	}

	return peeked, nil
}
