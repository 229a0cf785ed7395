package ytapp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Avinashricky211/Ytapp/internal/web"
	yt "github.com/Avinashricky211/Ytapp/internal/youtube"
)

type ServeCommand struct {
	Addr string `long:"addr" description:"listen address (overrides config)" env:"YTAPP_ADDR"`
	Command
}

func (cmd *ServeCommand) Execute([]string) error {
	defer cmd.Close()

	cfg := cmd.Config
	if cmd.Addr != "" {
		cfg.Server.Addr = cmd.Addr
	}
	if err := cfg.ValidateServer(); err != nil {
		return err
	}

	oauthConfig, err := yt.NewConfig(cfg.Youtube.Credentials(), cfg.Youtube.Scopes, cfg.RedirectURL())
	if err != nil {
		return err
	}

	app := web.New(oauthConfig, web.WithSessionTTL(cfg.Server.SessionTTL))

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: app.Handler(),
	}

	cmd.Wg.Add(1)
	go func() {
		defer cmd.Wg.Done()
		<-cmd.Ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Err(err).Msg("Could not shut down gracefully")
		}
	}()

	log.Info().Str("addr", cfg.Server.Addr).Str("url", cfg.Server.BaseURL).Msg("Listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
