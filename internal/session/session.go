package session

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-server/pkg/validation"
)

const ctxKey = "session"

// Flash carries the one-shot message slots popped for a render.
type Flash struct {
	Errors  []validation.Message
	Success string
}

// Session is the per-request view of a stored session. Mutations mark it
// dirty; the middleware persists dirty sessions after the handler runs.
type Session struct {
	id      string
	data    *Data
	isNew   bool
	dirty   bool
	rotated string // previous sid after LoginAs, empty otherwise
}

func (s *Session) ID() string     { return s.id }
func (s *Session) UserID() string { return s.data.UserID }

// LoginAs binds the session to a user id and rotates the session id so a
// pre-login sid can never address an authenticated session.
func (s *Session) LoginAs(userID string) {
	s.data.UserID = userID
	if s.rotated == "" && !s.isNew {
		s.rotated = s.id
	}
	s.id = newSID()
	s.dirty = true
}

func (s *Session) AddError(msg string) {
	s.data.FlashErrors = append(s.data.FlashErrors, validation.Message{Msg: msg})
	s.dirty = true
}

func (s *Session) AddErrors(msgs []validation.Message) {
	s.data.FlashErrors = append(s.data.FlashErrors, msgs...)
	s.dirty = true
}

func (s *Session) SetSuccess(msg string) {
	s.data.FlashSuccess = msg
	s.dirty = true
}

// PopFlash returns both flash slots and clears them. Each stashed message
// is readable exactly once.
func (s *Session) PopFlash() Flash {
	f := Flash{Errors: s.data.FlashErrors, Success: s.data.FlashSuccess}
	if len(f.Errors) > 0 || f.Success != "" {
		s.data.FlashErrors = nil
		s.data.FlashSuccess = ""
		s.dirty = true
	}
	return f
}

func (s *Session) Cart() []CartItem {
	return s.data.Cart
}

// AddToCart adds quantity of a product, merging with an existing line.
func (s *Session) AddToCart(productID string, quantity int) {
	for i := range s.data.Cart {
		if s.data.Cart[i].ProductID == productID {
			s.data.Cart[i].Quantity += quantity
			s.dirty = true
			return
		}
	}
	s.data.Cart = append(s.data.Cart, CartItem{ProductID: productID, Quantity: quantity})
	s.dirty = true
}

// Manager loads and saves sessions around each request.
type Manager struct {
	store      Store
	cookieName string
	domain     string
	secure     bool
	ttl        time.Duration
	logger     *logrus.Logger
}

func NewManager(store Store, cookieName, domain string, secure bool, ttl time.Duration, logger *logrus.Logger) *Manager {
	return &Manager{store: store, cookieName: cookieName, domain: domain, secure: secure, ttl: ttl, logger: logger}
}

func newSID() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("session: rand failed: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// Middleware attaches a Session to the Gin context. Unknown or absent
// sids get a fresh session and the cookie is set on the way out, so
// every visitor carries a session even before logging in. Dirty
// sessions are saved after the handler with the full TTL re-armed, so
// active sessions keep sliding forward.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := m.load(c)
		c.Set(ctxKey, sess)

		c.Next()

		ctx := c.Request.Context()
		if sess.rotated != "" {
			if err := m.store.Delete(ctx, sess.rotated); err != nil && m.logger != nil {
				m.logger.WithError(err).Warn("session: delete rotated sid failed")
			}
		}
		if sess.dirty || sess.isNew {
			if err := m.store.Save(ctx, sess.id, sess.data, m.ttl); err != nil && m.logger != nil {
				m.logger.WithError(err).Error("session: save failed")
			}
		}
		if sess.isNew || sess.rotated != "" {
			m.setCookie(c, sess.id)
		}
	}
}

func (m *Manager) load(c *gin.Context) *Session {
	if sid, err := c.Cookie(m.cookieName); err == nil && sid != "" {
		d, err := m.store.Get(c.Request.Context(), sid)
		if err != nil && m.logger != nil {
			m.logger.WithError(err).Warn("session: load failed")
		}
		if d != nil {
			return &Session{id: sid, data: d}
		}
	}
	return &Session{id: newSID(), data: &Data{CreatedAt: time.Now().UTC()}, isNew: true}
}

func (m *Manager) setCookie(c *gin.Context, sid string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, sid, int(m.ttl.Seconds()), "/", m.domain, m.secure, true)
}

// FromContext returns the request's session. Handlers run behind the
// Manager middleware, so a missing session is a wiring bug.
func FromContext(c *gin.Context) *Session {
	v, ok := c.Get(ctxKey)
	if !ok {
		panic("session: middleware not installed")
	}
	return v.(*Session)
}
