package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenantIDFromIssuer(t *testing.T) {
	tests := []struct {
		name   string
		issuer string
		want   string
		ok     bool
	}{
		{
			"commercial sts issuer",
			"https://sts.windows.net/11111111-2222-3333-4444-555555555555/",
			"11111111-2222-3333-4444-555555555555",
			true,
		},
		{
			"sovereign sts issuer",
			"https://sts.microsoftonline.us/aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee/",
			"aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
			true,
		},
		{
			"v2 login issuer",
			"https://login.microsoftonline.com/11111111-2222-3333-4444-555555555555/v2.0",
			"11111111-2222-3333-4444-555555555555",
			true,
		},
		{"no path", "https://sts.windows.net/", "", false},
		{"non-uuid segment", "https://sts.windows.net/common/", "", false},
		{"empty issuer", "", "", false},
		{"garbage", "::not a url::", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TenantIDFromIssuer(tt.issuer)
			if tt.ok {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.True(t, errors.Is(err, ErrMalformedIssuer))
				assert.Empty(t, got)
			}
		})
	}
}

func TestCloudFromRegionScope(t *testing.T) {
	assert.Equal(t, CloudGCCHigh, CloudFromRegionScope("USGov"))
	assert.Equal(t, CloudCommercial, CloudFromRegionScope(""))
	assert.Equal(t, CloudCommercial, CloudFromRegionScope("NA"))
	assert.Equal(t, CloudCommercial, CloudFromRegionScope("EU"))
	// Case-sensitive on purpose: the endpoint emits exactly "USGov".
	assert.Equal(t, CloudCommercial, CloudFromRegionScope("usgov"))
}
