package ytapp

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	yt3 "google.golang.org/api/youtube/v3"

	"github.com/Avinashricky211/Ytapp/internal/format"
	yt "github.com/Avinashricky211/Ytapp/internal/youtube"
)

type FetchCommand struct {
	Output string `short:"o" long:"output" choice:"table" choice:"json" choice:"raw" default:"table" description:"output format"` // nolint
	Args   struct {
		Kind string `positional-arg-name:"category" description:"liked | comments | playlists | subscriptions | activities"`
	} `positional-args:"yes" required:"yes"`
	Command
}

func (cmd *FetchCommand) Execute([]string) error {
	defer cmd.Close()

	kind, err := yt.ParseKind(cmd.Args.Kind)
	if err != nil {
		return err
	}
	if kind == yt.KindShares {
		return errors.New("YouTube API does not provide direct 'Shares' data")
	}

	if err := cmd.Config.ValidateOAuth(); err != nil {
		return err
	}

	oauthConfig, err := yt.NewConfig(cmd.Config.Youtube.Credentials(), cmd.Config.Youtube.Scopes, cmd.Config.RedirectURL())
	if err != nil {
		return err
	}

	service, err := yt.NewService(cmd.Ctx, oauthConfig, cmd.Config.Youtube.OAuth.Token())
	if err != nil {
		return err
	}

	response, err := yt.NewClient(service).Fetch(cmd.Ctx, kind)
	if err != nil {
		if yt.IsNoChannel(err) {
			log.Warn().Msg("No channel found for this account")
			return nil
		}
		return err
	}

	if cmd.Output == "raw" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	}

	var out format.Formatter
	if cmd.Output == "json" {
		out = format.NewJSON(os.Stdout)
	} else {
		out = format.NewTable(os.Stdout)
	}

	for _, item := range items(response) {
		if err := out.Put(item); err != nil {
			return err
		}
	}
	return out.Flush()
}

func items(response interface{}) []*format.Item {
	switch r := response.(type) {
	case *yt3.VideoListResponse:
		return format.Videos(r)
	case *yt3.SubscriptionListResponse:
		return format.Subscriptions(r)
	case *yt3.PlaylistListResponse:
		return format.Playlists(r)
	case *yt3.ActivityListResponse:
		return format.Activities(r)
	case *yt3.CommentThreadListResponse:
		return format.CommentThreads(r)
	}
	return nil
}
