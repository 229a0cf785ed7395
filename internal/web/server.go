package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"github.com/Avinashricky211/Ytapp/internal/youtube"
)

// Server is the request/response web UI: authorize a Google account, pick a
// data category, fetch it, show the raw JSON.
type Server struct {
	oauth       *oauth2.Config
	sessions    *Store
	limiter     *rate.Limiter
	serviceOpts []option.ClientOption
	mux         *http.ServeMux
}

type Option func(*Server)

func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Server) {
		s.sessions = NewStore(ttl)
	}
}

// WithRateLimit caps how often the fetch endpoint reaches the YouTube API
// (quota protection against rapid form resubmits).
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(s *Server) {
		s.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithServiceOptions appends client options used when building the YouTube
// API service for a session.
func WithServiceOptions(opts ...option.ClientOption) Option {
	return func(s *Server) {
		s.serviceOpts = append(s.serviceOpts, opts...)
	}
}

func New(oauthConfig *oauth2.Config, opts ...Option) *Server {
	s := &Server{
		oauth:    oauthConfig,
		sessions: NewStore(DefaultSessionTTL),
		limiter:  rate.NewLimiter(rate.Every(time.Second), 5),
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/oauth/callback", s.handleCallback)
	mux.HandleFunc("/fetch", s.handleFetch)
	mux.HandleFunc("/logout", s.handleLogout)
	s.mux = mux

	return s
}

// Handler returns the root handler with request logging attached.
func (s *Server) Handler() http.Handler {
	return logRequests(s.mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	sess := s.sessions.Get(r)
	if sess != nil && sess.Authenticated() {
		data := &pageData{Kinds: kindOptions("")}
		if text := s.sessions.PopFlash(sess); text != "" {
			data.Notices = append(data.Notices, Notice{Level: levelSuccess, Text: text})
		} else {
			data.Notices = append(data.Notices, Notice{Level: levelSuccess, Text: "Already authenticated with YouTube!"})
		}
		s.render(w, "menu", data)
		return
	}

	if sess == nil {
		sess = s.sessions.Create(w)
	}

	authURL := s.oauth.AuthCodeURL(sess.State, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	s.render(w, "authorize", &pageData{
		AuthURL: authURL,
		Notices: []Notice{{
			Level: levelInfo,
			Text:  "Click the link below to authorize the app to access your YouTube data.",
		}},
	})
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(r)
	if sess == nil {
		s.renderError(w, "No pending authorization for this session.")
		return
	}

	q := r.URL.Query()
	if reason := q.Get("error"); reason != "" {
		s.renderError(w, fmt.Sprintf("Authorization was denied: %s", reason))
		return
	}
	if sess.State == "" || q.Get("state") != sess.State {
		s.renderError(w, "Invalid state parameter.")
		return
	}
	code := q.Get("code")
	if code == "" {
		s.renderError(w, "Missing authorization code.")
		return
	}

	token, err := s.oauth.Exchange(r.Context(), code)
	if err != nil {
		log.Err(err).Msg("Token exchange failed")
		s.renderError(w, fmt.Sprintf("Error fetching token: %v", err))
		return
	}

	s.sessions.SetToken(sess, token)
	s.sessions.SetFlash(sess, "Successfully authenticated!")

	// Redirect so the code parameter is cleared from the URL and cannot be
	// reused on reload.
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := s.sessions.Get(r)
	if sess == nil || !sess.Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	kind, err := youtube.ParseKind(r.FormValue("kind"))
	if err != nil {
		s.renderMenu(w, "", Notice{Level: levelError, Text: "Invalid option."})
		return
	}

	if kind == youtube.KindShares {
		s.renderMenu(w, kind, Notice{
			Level: levelWarning,
			Text:  "YouTube API does not provide direct 'Shares' data.",
		})
		return
	}

	if !s.limiter.Allow() {
		s.renderMenu(w, kind, Notice{
			Level: levelWarning,
			Text:  "Too many requests. Please wait a moment and try again.",
		})
		return
	}

	service, err := youtube.NewService(r.Context(), s.oauth, sess.Token, s.serviceOpts...)
	if err != nil {
		s.renderMenu(w, kind, Notice{Level: levelError, Text: fmt.Sprintf("Unexpected error: %v", err)})
		return
	}

	response, err := youtube.NewClient(service).Fetch(r.Context(), kind)
	if err != nil {
		s.renderMenu(w, kind, classify(err))
		return
	}

	out, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		s.renderMenu(w, kind, Notice{Level: levelError, Text: fmt.Sprintf("Unexpected error: %v", err)})
		return
	}

	s.render(w, "result", &pageData{
		Kind:  kind.Title(),
		JSON:  string(out),
		Kinds: kindOptions(kind),
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sess := s.sessions.Get(r); sess != nil {
		s.sessions.Delete(w, sess)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// classify maps a fetch error to its user-visible notice: a missing channel
// is a soft warning, an API error is an HTTP error, the rest is unexpected.
func classify(err error) Notice {
	if youtube.IsNoChannel(err) {
		return Notice{Level: levelWarning, Text: "No channel found for this account."}
	}
	if apiErr, ok := youtube.AsHTTPError(err); ok {
		return Notice{Level: levelError, Text: fmt.Sprintf("HTTP error: %v", apiErr)}
	}
	return Notice{Level: levelError, Text: fmt.Sprintf("Unexpected error: %v", err)}
}

func (s *Server) renderMenu(w http.ResponseWriter, selected youtube.Kind, notices ...Notice) {
	s.render(w, "menu", &pageData{
		Notices: notices,
		Kinds:   kindOptions(selected),
	})
}

func (s *Server) renderError(w http.ResponseWriter, text string) {
	s.render(w, "authorize", &pageData{
		Notices: []Notice{{Level: levelError, Text: text}},
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Msg("Request")
	})
}
