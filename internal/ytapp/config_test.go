package ytapp

import (
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Server.Addr = "127.0.0.1:8080"
	cfg.Server.BaseURL = "http://127.0.0.1:8080"
	cfg.Youtube.Client.ID = "id"
	cfg.Youtube.Client.Secret = "secret"
	return cfg
}

func TestValidateServer(t *testing.T) {
	if err := validConfig().ValidateServer(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateServerBadBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.Server.BaseURL = "not a url"
	if err := cfg.ValidateServer(); err == nil {
		t.Fatal("expected an error for a relative base URL")
	}
}

func TestValidateServerMissingCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.Youtube.Client.Secret = ""
	if err := cfg.ValidateServer(); err == nil {
		t.Fatal("expected an error for missing client credentials")
	}
}

func TestValidateOAuth(t *testing.T) {
	cfg := validConfig()
	if err := cfg.ValidateOAuth(); err == nil {
		t.Fatal("expected an error without a stored bundle")
	}

	// A refresh token is optional; an access token alone is a valid bundle.
	cfg.Youtube.OAuth = OAuth{AccessToken: "access"}
	if err := cfg.ValidateOAuth(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Youtube.OAuth = OAuth{
		AccessToken:  "access",
		TokenType:    "Bearer",
		RefreshToken: "refresh",
	}
	if err := cfg.ValidateOAuth(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRedirectURL(t *testing.T) {
	cfg := validConfig()
	cfg.Server.BaseURL = "https://ytapp.example.com/"
	if got := cfg.RedirectURL(); got != "https://ytapp.example.com/oauth/callback" {
		t.Fatalf("unexpected redirect URL: %q", got)
	}
}

func TestCredentialsEnvOverride(t *testing.T) {
	t.Setenv("YTAPP_CLIENT_ID", "env-id")
	t.Setenv("YTAPP_CLIENT_SECRET", "env-secret")

	cfg := validConfig()
	creds := cfg.Youtube.Credentials()
	if creds.ID != "env-id" || creds.Secret != "env-secret" {
		t.Fatalf("environment must win: %+v", creds)
	}
}

func TestCredentialsRoundTrip(t *testing.T) {
	token := &oauth2.Token{
		AccessToken:  "access",
		TokenType:    "Bearer",
		RefreshToken: "refresh",
	}

	got := NewCredentials(token).Token()
	if got.AccessToken != token.AccessToken || got.RefreshToken != token.RefreshToken {
		t.Fatalf("bundle round trip lost data: %+v", got)
	}
}

func TestMaskedConfigKeepsStructure(t *testing.T) {
	cfg := validConfig()
	cfg.Youtube.OAuth.AccessToken = "access"

	masked := *cfg
	masked.Youtube.Client.Secret = mask(masked.Youtube.Client.Secret)
	masked.Youtube.OAuth.AccessToken = mask(masked.Youtube.OAuth.AccessToken)

	if !strings.HasPrefix(masked.Youtube.Client.Secret, "*") {
		t.Fatalf("secret must be masked: %q", masked.Youtube.Client.Secret)
	}
	if cfg.Youtube.Client.Secret != "secret" {
		t.Fatal("masking must not touch the original config")
	}
}
