package handlers

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"beverage-storefront/internal/cart"
	"beverage-storefront/internal/checkout"
)

// sessionHeader carries the storefront session id; the cart lives and dies
// with the session, in memory only.
const sessionHeader = "X-Session-ID"

type session struct {
	id   string
	cart *cart.Cart

	mu   sync.Mutex
	flow *checkout.Flow
}

// checkoutFlow returns the session's active flow, starting a fresh one on
// first use and after a confirmed checkout (Confirmed is terminal per flow,
// not per session).
func (s *session) checkoutFlow(h *Handler) *checkout.Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flow == nil || s.flow.State() == checkout.StateConfirmed {
		s.flow = checkout.New(s.cart, h.api, h.notifier, h.lg)
	}
	return s.flow
}

// currentFlow is like checkoutFlow but never resets a confirmed flow, so the
// confirmation screen can still read the order id.
func (s *session) currentFlow(h *Handler) *checkout.Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flow == nil {
		s.flow = checkout.New(s.cart, h.api, h.notifier, h.lg)
	}
	return s.flow
}

type sessionStore struct {
	mu sync.RWMutex
	m  map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{m: make(map[string]*session)}
}

func (s *sessionStore) get(id string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.m[id]
	return sess, ok
}

func (s *sessionStore) create() *session {
	sess := &session{id: uuid.New().String(), cart: cart.New()}
	s.mu.Lock()
	s.m[sess.id] = sess
	s.mu.Unlock()
	return sess
}

// session resolves the request's session, minting a new one for missing or
// unknown ids. The id is always echoed back so the client can stick to it.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *session {
	id := r.Header.Get(sessionHeader)
	sess, ok := h.sessions.get(id)
	if !ok {
		sess = h.sessions.create()
	}
	w.Header().Set(sessionHeader, sess.id)
	return sess
}
