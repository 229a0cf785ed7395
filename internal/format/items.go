package format

import (
	"fmt"
	"strings"

	"github.com/senseyeio/duration"
	"google.golang.org/api/youtube/v3"
)

// Converters from raw API responses to CLI rows. Only fields present in the
// fixed `part` sets of the fetchers are touched.

func Videos(response *youtube.VideoListResponse) []*Item {
	items := make([]*Item, 0, len(response.Items))
	for _, v := range response.Items {
		item := &Item{ID: v.Id}
		if v.Snippet != nil {
			item.Published = date(v.Snippet.PublishedAt)
			item.Channel = v.Snippet.ChannelTitle
			item.Title = v.Snippet.Title
		}
		if v.ContentDetails != nil {
			item.Detail = Duration(v.ContentDetails.Duration)
		}
		items = append(items, item)
	}
	return items
}

func Subscriptions(response *youtube.SubscriptionListResponse) []*Item {
	items := make([]*Item, 0, len(response.Items))
	for _, s := range response.Items {
		item := &Item{ID: s.Id}
		if s.Snippet != nil {
			item.Published = date(s.Snippet.PublishedAt)
			item.Title = s.Snippet.Title
			if s.Snippet.ResourceId != nil {
				item.Channel = s.Snippet.ResourceId.ChannelId
			}
		}
		if s.ContentDetails != nil {
			item.Detail = fmt.Sprintf("%d videos", s.ContentDetails.TotalItemCount)
		}
		items = append(items, item)
	}
	return items
}

func Playlists(response *youtube.PlaylistListResponse) []*Item {
	items := make([]*Item, 0, len(response.Items))
	for _, p := range response.Items {
		item := &Item{ID: p.Id}
		if p.Snippet != nil {
			item.Published = date(p.Snippet.PublishedAt)
			item.Channel = p.Snippet.ChannelTitle
			item.Title = p.Snippet.Title
		}
		if p.ContentDetails != nil {
			item.Detail = fmt.Sprintf("%d items", p.ContentDetails.ItemCount)
		}
		items = append(items, item)
	}
	return items
}

func Activities(response *youtube.ActivityListResponse) []*Item {
	items := make([]*Item, 0, len(response.Items))
	for _, a := range response.Items {
		item := &Item{ID: a.Id}
		if a.Snippet != nil {
			item.Published = date(a.Snippet.PublishedAt)
			item.Channel = a.Snippet.ChannelTitle
			item.Title = a.Snippet.Title
			item.Detail = a.Snippet.Type
		}
		items = append(items, item)
	}
	return items
}

func CommentThreads(response *youtube.CommentThreadListResponse) []*Item {
	items := make([]*Item, 0, len(response.Items))
	for _, c := range response.Items {
		item := &Item{ID: c.Id}
		if c.Snippet != nil && c.Snippet.TopLevelComment != nil && c.Snippet.TopLevelComment.Snippet != nil {
			snippet := c.Snippet.TopLevelComment.Snippet
			item.Published = date(snippet.PublishedAt)
			item.Channel = snippet.AuthorDisplayName
			item.Title = snippet.TextDisplay
			item.Detail = fmt.Sprintf("%d replies", c.Snippet.TotalReplyCount)
		}
		items = append(items, item)
	}
	return items
}

// Duration renders an ISO 8601 video duration ("PT1H2M3S") in clock form.
// Unparseable input is passed through untouched.
func Duration(iso string) string {
	if iso == "" {
		return ""
	}

	d, err := duration.ParseISO8601(iso)
	if err != nil {
		return iso
	}

	if d.TH > 0 {
		return fmt.Sprintf("%d:%02d:%02d", d.TH, d.TM, d.TS)
	}
	return fmt.Sprintf("%d:%02d", d.TM, d.TS)
}

func date(rfc3339 string) string {
	if i := strings.IndexByte(rfc3339, 'T'); i > 0 {
		return rfc3339[:i]
	}
	return rfc3339
}
