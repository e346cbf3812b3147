package auth

// Claims is the identity-token payload the login flow expects to receive
// once a code exchange exists. Nothing populates or verifies it yet: the
// callback discards the authorization code, so treat any Claims value as
// untrusted input.
type Claims struct {
	Subject   string `json:"sub"`   // provider-scoped user identifier
	Email     string `json:"email"` // as asserted by the provider
	ExpiresAt int64  `json:"exp"`   // unix seconds
}
