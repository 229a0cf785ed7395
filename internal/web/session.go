package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"golang.org/x/oauth2"
)

const (
	sessionCookie = "ytapp_session"

	// DefaultSessionTTL bounds how long an idle credential bundle is kept
	// in memory.
	DefaultSessionTTL = 30 * time.Minute
)

// Session is the only stateful entity of the app: the OAuth state nonce
// while authorization is pending, and the credential bundle once the code
// has been exchanged. It lives in process memory only.
type Session struct {
	ID    string
	State string
	Token *oauth2.Token

	flash   string
	expires time.Time
}

// Authenticated reports whether the session carries a credential bundle.
func (s *Session) Authenticated() bool {
	return s.Token != nil && s.Token.AccessToken != ""
}

// Store keeps sessions in a mutex-guarded map. Expired entries are swept
// lazily on every Create.
type Store struct {
	mu   sync.Mutex
	ttl  time.Duration
	data map[string]*Session
	now  func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Store{
		ttl:  ttl,
		data: make(map[string]*Session),
		now:  time.Now,
	}
}

// Create starts a new pending session and sets its cookie.
func (st *Store) Create(w http.ResponseWriter) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sweep()

	sess := &Session{
		ID:      newID(),
		State:   newID(),
		expires: st.now().Add(st.ttl),
	}
	st.data[sess.ID] = sess

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sess
}

// Get returns the request's session, refreshing its expiry, or nil.
func (st *Store) Get(r *http.Request) *Session {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.data[c.Value]
	if !ok {
		return nil
	}
	if st.now().After(sess.expires) {
		delete(st.data, sess.ID)
		return nil
	}

	sess.expires = st.now().Add(st.ttl)
	return sess
}

// SetToken stores the credential bundle and clears the state nonce, so the
// authorization code/state pair cannot be replayed.
func (st *Store) SetToken(sess *Session, token *oauth2.Token) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess.Token = token
	sess.State = ""
}

// SetFlash queues a one-shot notice for the next rendered page.
func (st *Store) SetFlash(sess *Session, text string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess.flash = text
}

// PopFlash returns the queued notice, if any, and clears it.
func (st *Store) PopFlash(sess *Session) string {
	st.mu.Lock()
	defer st.mu.Unlock()

	text := sess.flash
	sess.flash = ""
	return text
}

// Delete discards the session and expires its cookie.
func (st *Store) Delete(w http.ResponseWriter, sess *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.data, sess.ID)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (st *Store) sweep() {
	now := st.now()
	for id, sess := range st.data {
		if now.After(sess.expires) {
			delete(st.data, id)
		}
	}
}

func newID() string {
	return uuid.Must(uuid.NewV4()).String()
}
