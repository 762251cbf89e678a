package store

import "sync"

// CanvasSize is the pixel width/height assigned to the drawing surface.
type CanvasSize struct {
	Width  int
	Height int
}

// DefaultCanvasSize matches the raster size of a freshly created drawing element.
var DefaultCanvasSize = CanvasSize{Width: 300, Height: 150}

// State is everything the store holds.
type State struct {
	CanvasSize CanvasSize
}

// Action transforms one State into the next.
type Action interface {
	reduce(State) State
}

type setCanvasSize struct {
	size CanvasSize
}

func (a setCanvasSize) reduce(s State) State {
	s.CanvasSize = a.size
	return s
}

// SetCanvasSize returns an action replacing the canvas size.
// Negative dimensions are clamped to zero.
func SetCanvasSize(size CanvasSize) Action {
	if size.Width < 0 {
		size.Width = 0
	}
	if size.Height < 0 {
		size.Height = 0
	}
	return setCanvasSize{size: size}
}

// GetCanvasSize selects the canvas size from a state.
func GetCanvasSize(s State) CanvasSize {
	return s.CanvasSize
}

type subscriber struct {
	id      int
	fn      func(CanvasSize)
	removed bool // guarded by Store.mu
}

// Store holds the shared State. It is safe for concurrent use.
// Listeners run outside the lock, after the new state is visible.
type Store struct {
	mu     sync.Mutex
	state  State
	subs   []*subscriber
	nextID int
}

// New creates a store starting from initial.
func New(initial State) *Store {
	return &Store{state: initial}
}

// NewDefault creates a store holding DefaultCanvasSize.
func NewDefault() *Store {
	return New(State{CanvasSize: DefaultCanvasSize})
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CanvasSize returns the current canvas size.
func (s *Store) CanvasSize() CanvasSize {
	return GetCanvasSize(s.State())
}

// SetCanvasSize dispatches SetCanvasSize(size).
func (s *Store) SetCanvasSize(size CanvasSize) {
	s.Dispatch(SetCanvasSize(size))
}

// Dispatch applies an action. Subscribers are notified, in subscription
// order, only when the selected canvas size changed. A subscriber removed
// by an earlier one during the same dispatch is skipped. A nil action is
// ignored.
func (s *Store) Dispatch(a Action) {
	if a == nil {
		return
	}
	s.mu.Lock()
	prev := GetCanvasSize(s.state)
	s.state = a.reduce(s.state)
	next := GetCanvasSize(s.state)
	var subs []*subscriber
	if next != prev {
		subs = make([]*subscriber, len(s.subs))
		copy(subs, s.subs)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		s.mu.Lock()
		removed := sub.removed
		s.mu.Unlock()
		if removed {
			continue
		}
		sub.fn(next)
	}
}

// Subscribe registers fn for canvas size changes and returns a function
// that removes it. Calling the returned function more than once is a no-op.
func (s *Store) Subscribe(fn func(CanvasSize)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, &subscriber{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					sub.removed = true
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Subscribers reports how many listeners are registered.
func (s *Store) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
