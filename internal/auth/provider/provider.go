package provider

// OAuthProvider is the part of an external identity provider the login
// flow depends on. Implementations only describe where to send the
// browser; they perform no token exchange, user creation, or session
// management.
type OAuthProvider interface {
	// Name returns the provider identifier (e.g. "auth0").
	Name() string

	// AuthCodeURL returns the provider's authorization URL. It must be a
	// pure function of the provider's configuration.
	AuthCodeURL() string
}
