package youtube

import (
	"context"

	"google.golang.org/api/youtube/v3"
)

// maxResults is the fixed result-size cap of every list call. There is no
// pagination: one page of up to ten items is fetched and displayed as is.
const maxResults = 10

// Client exposes the fixed set of account-data fetches the app supports.
// Each method issues exactly one list call (ChannelComments needs a channel
// lookup first) and returns the raw API response.
type Client struct {
	service *youtube.Service
}

func NewClient(service *youtube.Service) *Client {
	return &Client{service: service}
}

// LikedVideos returns the videos the user rated "like", if likes are public.
func (c *Client) LikedVideos(ctx context.Context) (*youtube.VideoListResponse, error) {
	return c.service.Videos.
		List([]string{"snippet", "contentDetails"}).
		MyRating("like").
		MaxResults(maxResults).
		Context(ctx).
		Do()
}

// Subscriptions returns the user's channel subscriptions.
func (c *Client) Subscriptions(ctx context.Context) (*youtube.SubscriptionListResponse, error) {
	return c.service.Subscriptions.
		List([]string{"snippet", "contentDetails"}).
		Mine(true).
		MaxResults(maxResults).
		Context(ctx).
		Do()
}

// Playlists returns the user's own playlists.
func (c *Client) Playlists(ctx context.Context) (*youtube.PlaylistListResponse, error) {
	return c.service.Playlists.
		List([]string{"snippet", "contentDetails"}).
		Mine(true).
		MaxResults(maxResults).
		Context(ctx).
		Do()
}

// Activities returns the user's recent channel activities.
func (c *Client) Activities(ctx context.Context) (*youtube.ActivityListResponse, error) {
	return c.service.Activities.
		List([]string{"snippet", "contentDetails"}).
		Mine(true).
		MaxResults(maxResults).
		Context(ctx).
		Do()
}

// ChannelComments returns comment threads related to the user's channel.
// An account without a channel is reported as ErrNoChannel.
func (c *Client) ChannelComments(ctx context.Context) (*youtube.CommentThreadListResponse, error) {
	channels, err := c.service.Channels.
		List([]string{"id"}).
		Mine(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	if len(channels.Items) == 0 {
		return nil, ErrNoChannel
	}

	return c.service.CommentThreads.
		List([]string{"snippet"}).
		AllThreadsRelatedToChannelId(channels.Items[0].Id).
		MaxResults(maxResults).
		Context(ctx).
		Do()
}

// Fetch dispatches one fetch by kind. KindShares is a placeholder and never
// reaches the network; the caller is expected to handle it before calling.
func (c *Client) Fetch(ctx context.Context, kind Kind) (interface{}, error) {
	switch kind {
	case KindLikedVideos:
		return c.LikedVideos(ctx)
	case KindComments:
		return c.ChannelComments(ctx)
	case KindPlaylists:
		return c.Playlists(ctx)
	case KindSubscriptions:
		return c.Subscriptions(ctx)
	case KindActivities:
		return c.Activities(ctx)
	default:
		return nil, ErrNoFetcher
	}
}
