package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsDecodeIDTokenPayload(t *testing.T) {
	payload := `{
		"iss": "https://example.auth0.com/",
		"sub": "google-oauth2|1234567890",
		"aud": "abc123",
		"email": "ada@example.com",
		"email_verified": true,
		"iat": 1700000000,
		"exp": 1700036000
	}`

	var claims Claims
	require.NoError(t, json.Unmarshal([]byte(payload), &claims))

	assert.Equal(t, Claims{
		Subject:   "google-oauth2|1234567890",
		Email:     "ada@example.com",
		ExpiresAt: 1700036000,
	}, claims)
}
