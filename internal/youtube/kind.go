package youtube

import (
	"github.com/pkg/errors"
)

// Kind is a user-selectable category of account data.
type Kind string

const (
	KindLikedVideos   Kind = "liked"
	KindComments      Kind = "comments"
	KindShares        Kind = "shares"
	KindPlaylists     Kind = "playlists"
	KindSubscriptions Kind = "subscriptions"
	KindActivities    Kind = "activities"
)

// Kinds returns all categories in menu order.
func Kinds() []Kind {
	return []Kind{
		KindLikedVideos,
		KindComments,
		KindShares,
		KindPlaylists,
		KindSubscriptions,
		KindActivities,
	}
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if s == string(k) {
			return k, nil
		}
	}
	return "", errors.Errorf("unknown data category: %q", s)
}

func (k Kind) Title() string {
	switch k {
	case KindLikedVideos:
		return "Liked Videos"
	case KindComments:
		return "Comments"
	case KindShares:
		return "Shares (Placeholder)"
	case KindPlaylists:
		return "Playlists"
	case KindSubscriptions:
		return "Subscriptions"
	case KindActivities:
		return "Activities"
	}
	return string(k)
}
