package youtube

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// NewService builds an authenticated YouTube API service from a credential
// bundle. Extra client options (custom endpoint, transport) are appended
// after the token source.
func NewService(ctx context.Context, config *oauth2.Config, token *oauth2.Token, extra ...option.ClientOption) (*youtube.Service, error) {
	ytopts := []option.ClientOption{
		option.WithTokenSource(config.TokenSource(ctx, token)),
	}
	ytopts = append(ytopts, extra...)

	service, err := youtube.NewService(ctx, ytopts...)
	if err != nil {
		return nil, fmt.Errorf("could not create youtube client: %v", err)
	}

	return service, nil
}
