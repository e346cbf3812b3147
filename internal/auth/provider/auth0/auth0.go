package auth0

import (
	"errors"

	"protettorato/internal/auth/provider"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

const (
	providerName = "auth0"

	// connection tells Auth0 to skip its own login box and go straight
	// to the upstream Google connection.
	connection = "google-oauth2"
)

var ErrMissingConfig = errors.New("auth0 config missing required fields")

// Config identifies the Auth0 tenant and the registered application.
// ClientSecret is only needed for a code exchange and is never sent to
// the browser.
type Config struct {
	Domain       string
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// Provider builds authorization requests against the Auth0 hosted login
// page. It holds no per-request state and is safe for concurrent use.
type Provider struct {
	oauthConfig *oauth2.Config
}

func New(cfg Config) (*Provider, error) {
	if cfg.Domain == "" || cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RedirectURI == "" {
		return nil, ErrMissingConfig
	}

	base := "https://" + cfg.Domain

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:  base + "/authorize",
			TokenURL: base + "/oauth/token",
		},
		Scopes: []string{
			oidc.ScopeOpenID,
			"profile",
			"email",
		},
	}

	return &Provider{oauthConfig: oauthCfg}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// AuthCodeURL returns the authorization URL for the configured tenant.
// No state or PKCE parameters are attached, so the result depends only
// on the Config.
func (p *Provider) AuthCodeURL() string {
	return p.oauthConfig.AuthCodeURL(
		"",
		oauth2.SetAuthURLParam("connection", connection),
	)
}

var _ provider.OAuthProvider = (*Provider)(nil)
