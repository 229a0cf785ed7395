package youtube_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"github.com/Avinashricky211/Ytapp/internal/youtube"
)

func TestNewConfigAuthURL(t *testing.T) {
	config, err := youtube.NewConfig(
		youtube.Credentials{ID: "client-id", Secret: "client-secret"},
		[]string{"https://www.googleapis.com/auth/youtube.force-ssl"},
		"https://ytapp.example.com/oauth/callback",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	authURL, err := url.Parse(config.AuthCodeURL("state-1", oauth2.AccessTypeOffline))
	if err != nil {
		t.Fatalf("could not parse auth URL: %v", err)
	}

	q := authURL.Query()
	if got := q.Get("scope"); got != "https://www.googleapis.com/auth/youtube.force-ssl" {
		t.Errorf("unexpected scope: %q", got)
	}
	if got := q.Get("redirect_uri"); got != "https://ytapp.example.com/oauth/callback" {
		t.Errorf("unexpected redirect_uri: %q", got)
	}
	if got := q.Get("state"); got != "state-1" {
		t.Errorf("unexpected state: %q", got)
	}
	if got := q.Get("client_id"); got != "client-id" {
		t.Errorf("unexpected client_id: %q", got)
	}
}

func TestNewConfigDefaultScope(t *testing.T) {
	config, err := youtube.NewConfig(
		youtube.Credentials{ID: "id", Secret: "secret"},
		nil,
		"http://127.0.0.1:8080/oauth/callback",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(config.Scopes) != 1 || !strings.HasSuffix(config.Scopes[0], "youtube.force-ssl") {
		t.Fatalf("unexpected scopes: %v", config.Scopes)
	}
}

func TestNewConfigSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client_secret.json")
	content := []byte(`{
		"web": {
			"client_id": "file-client-id",
			"client_secret": "file-client-secret",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"redirect_uris": ["https://ytappapi.example.com"]
		}
	}`)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatal(err)
	}

	config, err := youtube.NewConfig(
		youtube.Credentials{SecretFile: path},
		[]string{"https://www.googleapis.com/auth/youtube.readonly"},
		"https://ytapp.example.com/oauth/callback",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.ClientID != "file-client-id" {
		t.Errorf("unexpected client id: %q", config.ClientID)
	}
	if config.RedirectURL != "https://ytapp.example.com/oauth/callback" {
		t.Errorf("redirect URL must be overridden: %q", config.RedirectURL)
	}
}

func TestNewConfigMissingCredentials(t *testing.T) {
	if _, err := youtube.NewConfig(youtube.Credentials{}, nil, ""); err == nil {
		t.Fatal("expected an error for empty credentials")
	}
}

func TestExchangePopulatesBundle(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("could not parse token request: %v", err)
		}
		if got := r.PostForm.Get("code"); got != "auth-code-1" {
			t.Errorf("unexpected code: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "access-1",
			"token_type": "Bearer",
			"refresh_token": "refresh-1",
			"expires_in": 3600
		}`)) // nolint
	}))
	defer tokenSrv.Close()

	config := &oauth2.Config{
		ClientID:     "id",
		ClientSecret: "secret",
		Endpoint: oauth2.Endpoint{
			AuthURL:  tokenSrv.URL + "/auth",
			TokenURL: tokenSrv.URL + "/token",
		},
	}

	token, err := config.Exchange(context.Background(), "auth-code-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.AccessToken == "" {
		t.Fatal("access token must not be empty")
	}
	if token.RefreshToken != "refresh-1" {
		t.Fatalf("unexpected refresh token: %q", token.RefreshToken)
	}
}
