// Package session holds the client-side application state: the logged-in
// user, the rental cart and the watchlist. The state object is constructed
// explicitly and injected into whatever owns the UI; there are no package
// globals. Mutations go through methods, snapshots are immutable copies,
// and every change is pushed to subscribers.
package session

import (
	"encoding/json"
	"errors"
	"sync"
)

// ErrNotLoggedIn is returned by cart/watchlist mutations without a user.
var ErrNotLoggedIn = errors.New("session: no user logged in")

// User is the sanitized user projection held client-side.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Item is the client-side view of a catalog item, the payload carried in
// the cart and watchlist.
type Item struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Genre     string  `json:"genre"`
	DailyRate float64 `json:"daily_rate"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// Snapshot is an immutable view of the whole session state.
type Snapshot struct {
	User      *User
	Cart      []Item
	Watchlist []Item
}

// Session is the client session state container. Cart and watchlist are
// ordered, duplicate-free, keyed per user in the backing storage. Safe for
// concurrent use.
type Session struct {
	mu        sync.RWMutex
	storage   Storage
	user      *User
	cart      []Item
	watchlist []Item
	subs      map[int]func(Snapshot)
	nextSub   int
}

// New builds a Session on top of the given storage backend.
func New(storage Storage) *Session {
	return &Session{
		storage: storage,
		subs:    make(map[int]func(Snapshot)),
	}
}

// Subscribe registers fn to be called with a fresh snapshot after every
// mutation. The returned function unsubscribes.
func (s *Session) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// SetUser activates a user and restores that user's persisted cart and
// watchlist. Switching users swaps the active sequences.
func (s *Session) SetUser(user User) {
	s.mu.Lock()
	u := user
	s.user = &u
	s.cart = s.loadItems(cartKey(user.ID))
	s.watchlist = s.loadItems(watchlistKey(user.ID))
	s.mu.Unlock()
	s.notify()
}

// User returns a copy of the current user, or nil when logged out.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Cart returns a copy of the current cart contents.
func (s *Session) Cart() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyItems(s.cart)
}

// Watchlist returns a copy of the current watchlist contents.
func (s *Session) Watchlist() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyItems(s.watchlist)
}

// Snapshot returns an immutable view of the full session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// AddToCart appends the item unless its id is already present.
func (s *Session) AddToCart(item Item) error {
	return s.add(&s.cart, cartKey, item)
}

// RemoveFromCart filters the id out of the cart. Removing an absent id is
// a no-op.
func (s *Session) RemoveFromCart(id string) error {
	return s.remove(&s.cart, cartKey, id)
}

// AddToWatchlist appends the item unless its id is already present.
func (s *Session) AddToWatchlist(item Item) error {
	return s.add(&s.watchlist, watchlistKey, item)
}

// RemoveFromWatchlist filters the id out of the watchlist.
func (s *Session) RemoveFromWatchlist(id string) error {
	return s.remove(&s.watchlist, watchlistKey, id)
}

// CartTotal sums the daily rates of everything in the cart.
func (s *Session) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, item := range s.cart {
		total += item.DailyRate
	}
	return total
}

// Logout clears the in-memory state only. The persisted sequences survive
// so they are restored on the same user's next login.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.cart = nil
	s.watchlist = nil
	s.mu.Unlock()
	s.notify()
}

// PurgeUser removes the current user's persisted sequences and logs out.
// Called after account deletion.
func (s *Session) PurgeUser() error {
	s.mu.Lock()
	if s.user != nil {
		if err := s.storage.Delete(cartKey(s.user.ID)); err != nil {
			s.mu.Unlock()
			return err
		}
		if err := s.storage.Delete(watchlistKey(s.user.ID)); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	s.user = nil
	s.cart = nil
	s.watchlist = nil
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *Session) add(seq *[]Item, key func(string) string, item Item) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return ErrNotLoggedIn
	}
	for _, existing := range *seq {
		if existing.ID == item.ID {
			s.mu.Unlock()
			return nil
		}
	}
	*seq = append(*seq, item)
	err := s.persist(key(s.user.ID), *seq)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *Session) remove(seq *[]Item, key func(string) string, id string) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return ErrNotLoggedIn
	}
	filtered := (*seq)[:0:0]
	for _, existing := range *seq {
		if existing.ID != id {
			filtered = append(filtered, existing)
		}
	}
	*seq = filtered
	err := s.persist(key(s.user.ID), *seq)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *Session) persist(key string, items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.storage.Set(key, string(raw))
}

func (s *Session) loadItems(key string) []Item {
	raw, ok := s.storage.Get(key)
	if !ok || raw == "" {
		return nil
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		Cart:      copyItems(s.cart),
		Watchlist: copyItems(s.watchlist),
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

func (s *Session) notify() {
	s.mu.RLock()
	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func cartKey(userID string) string {
	return "cart:" + userID
}

func watchlistKey(userID string) string {
	return "watchlist:" + userID
}
