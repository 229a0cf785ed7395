package ytapp

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	yt "github.com/Avinashricky211/Ytapp/internal/youtube"
)

const ConfigDefaults = `
server:
  addr: "127.0.0.1:8080"
  base_url: "http://127.0.0.1:8080"
  session_ttl: 30m
youtube:
  scopes:
    - "https://www.googleapis.com/auth/youtube.force-ssl"
`

type Config struct {
	Server  Server
	Youtube Youtube
}

type Server struct {
	Addr       string        `yaml:"addr"`
	BaseURL    string        `yaml:"base_url"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

type Youtube struct {
	Client Client   `yaml:"client"`
	Scopes []string `yaml:"scopes"`
	OAuth  OAuth    `yaml:"oauth"`
}

// Client identifies the OAuth application. All three fields may instead come
// from YTAPP_CLIENT_{ID,SECRET,SECRET_FILE} environment variables (see
// Credentials), so secrets never have to live in the config file.
type Client struct {
	ID         string `yaml:"id"`
	Secret     string `yaml:"secret"`
	SecretFile string `yaml:"secret_file"`
}

// OAuth is a stored credential bundle, produced by `ytapp setup` and used by
// `ytapp fetch`. The web UI keeps its bundles in session memory instead.
type OAuth struct {
	AccessToken  string    `json:"access_token" yaml:"access_token"`
	TokenType    string    `json:"token_type,omitempty" yaml:"token_type,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty" yaml:"expiry,omitempty"`
}

func (cr *OAuth) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  cr.AccessToken,
		TokenType:    cr.TokenType,
		RefreshToken: cr.RefreshToken,
		Expiry:       cr.Expiry,
	}
}

func NewCredentials(token *oauth2.Token) *OAuth {
	return &OAuth{
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}
}

// Credentials returns the OAuth client credentials; environment variables
// take precedence over the config file.
func (y *Youtube) Credentials() yt.Credentials {
	creds := yt.Credentials{
		ID:         y.Client.ID,
		Secret:     y.Client.Secret,
		SecretFile: y.Client.SecretFile,
	}
	if v := os.Getenv("YTAPP_CLIENT_ID"); v != "" {
		creds.ID = v
	}
	if v := os.Getenv("YTAPP_CLIENT_SECRET"); v != "" {
		creds.Secret = v
	}
	if v := os.Getenv("YTAPP_CLIENT_SECRET_FILE"); v != "" {
		creds.SecretFile = v
	}
	return creds
}

// RedirectURL is the provider-registered redirect target of the web flow.
func (cfg *Config) RedirectURL() string {
	return strings.TrimRight(cfg.Server.BaseURL, "/") + "/oauth/callback"
}

func (cfg *Config) ValidateServer() error {
	if cfg.Server.Addr == "" {
		return errors.New("`server.addr` is required")
	}

	u, err := url.Parse(cfg.Server.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("`server.base_url` must be an absolute http(s) URL matching the registered redirect URI")
	}

	creds := cfg.Youtube.Credentials()
	if creds.SecretFile == "" && (creds.ID == "" || creds.Secret == "") {
		return errors.New("youtube client credentials are required: " +
			"set `youtube.client.{id,secret}`, `youtube.client.secret_file` or YTAPP_CLIENT_* variables")
	}

	return nil
}

// ValidateOAuth requires only an access token: the refresh token is
// optional in a bundle, it just means the bundle stops working once the
// access token expires.
func (cfg *Config) ValidateOAuth() error {
	if cfg.Youtube.OAuth.AccessToken == "" {
		return errors.New("`youtube.oauth.access_token` is required (run `ytapp setup`)")
	}
	return nil
}
