package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// NewToken runs the authorization code flow with a loopback redirect:
// it opens the consent URL in a browser, captures the code on a local
// HTTP listener and exchanges it once. The redirect URL of the config
// must point at a loopback address.
func NewToken(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	redirectURL, err := url.Parse(config.RedirectURL)
	if err != nil {
		return nil, err
	}

	codeCh := make(chan string, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		codeCh <- r.FormValue("code")
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("You can now safely close this browser window.")) // nolint
	})
	srv := &http.Server{Addr: ":" + redirectURL.Port(), Handler: mux}

	wg := &sync.WaitGroup{}
	defer wg.Wait()

	wg.Add(1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Err(err).Msg("ListenAndServe")
		}
		wg.Done()
	}()

	defer func() {
		go stopServer(ctx, srv)
	}()

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	go openURL(authURL)

	select {
	case code := <-codeCh:
		return config.Exchange(ctx, code)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func openURL(u string) {
	if err := browser.OpenURL(u); err != nil {
		log.Err(err).Msg("Could not open browser")
	}
}

func stopServer(ctx context.Context, srv *http.Server) {
	if e := srv.Shutdown(ctx); e != nil {
		log.Err(e).Msg("Shutdown")
	}
}
