package youtube

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/youtube/v3"
)

// Credentials identifies the OAuth client application. It is always supplied
// externally (config file, client_secret.json or environment), never
// embedded in code.
type Credentials struct {
	ID         string
	Secret     string
	SecretFile string
}

// NewConfig builds the OAuth 2.0 configuration for the given client
// credentials. If SecretFile is set, it must point to a client secret JSON
// file in the format downloaded from the Google Cloud Console.
func NewConfig(creds Credentials, scopes []string, redirectURL string) (*oauth2.Config, error) {
	if len(scopes) == 0 {
		scopes = []string{youtube.YoutubeForceSslScope}
	}

	if creds.SecretFile != "" {
		data, err := os.ReadFile(creds.SecretFile)
		if err != nil {
			return nil, errors.Wrap(err, "could not read client secret file")
		}
		config, err := google.ConfigFromJSON(data, scopes...)
		if err != nil {
			return nil, errors.Wrap(err, "could not parse client secret file")
		}
		config.RedirectURL = redirectURL
		return config, nil
	}

	if creds.ID == "" || creds.Secret == "" {
		return nil, errors.New("youtube client credentials are not configured")
	}

	return &oauth2.Config{
		ClientID:     creds.ID,
		ClientSecret: creds.Secret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}, nil
}
