package session

import (
	"time"

	"github.com/N1ghtSe7en/hellomint-main/internal/model"

	"github.com/patrickmn/go-cache"
)

// Store keeps live sessions in an expiring in-memory cache. Nothing is
// persisted; restarting the process signs everyone out.
type Store struct {
	c *cache.Cache
}

// NewStore creates a session store with the given session lifetime.
func NewStore(ttl time.Duration) *Store {
	return &Store{c: cache.New(ttl, 10*time.Minute)}
}

// Put stores a session under its token.
func (s *Store) Put(token string, session *model.Session) {
	s.c.SetDefault(token, session)
}

// Get returns the session for a token, if still alive.
func (s *Store) Get(token string) (*model.Session, bool) {
	v, ok := s.c.Get(token)
	if !ok {
		return nil, false
	}
	return v.(*model.Session), true
}

// Delete removes a session.
func (s *Store) Delete(token string) {
	s.c.Delete(token)
}

// NotificationStore holds the transient mint-success banners. Entries expire
// on their own, so the banner hides itself after the configured delay with
// no timer to leak or cancel.
type NotificationStore struct {
	c *cache.Cache
}

// NewNotificationStore creates a notification store with the given
// visibility window.
func NewNotificationStore(ttl time.Duration) *NotificationStore {
	return &NotificationStore{c: cache.New(ttl, time.Minute)}
}

// Put shows a notification for the session.
func (s *NotificationStore) Put(token string, n *model.Notification) {
	s.c.SetDefault(token, n)
}

// Get returns the visible notification for the session, if any.
func (s *NotificationStore) Get(token string) (*model.Notification, bool) {
	v, ok := s.c.Get(token)
	if !ok {
		return nil, false
	}
	return v.(*model.Notification), true
}

// Clear hides the session's notification early (e.g. on sign-out).
func (s *NotificationStore) Clear(token string) {
	s.c.Delete(token)
}
