package store

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Subscriber is called after every dispatch with the command and the resulting state.
type Subscriber func(cmd Command, s State)

// Store owns a [State] and applies commands to it one at a time.
type Store struct {
	mu          sync.Mutex
	state       State
	subscribers []Subscriber
	logger      *log.Logger
}

// New creates a [Store] holding initial. A nil logger disables command logging.
func New(initial State, logger *log.Logger) *Store {
	return &Store{state: initial, logger: logger}
}

// SetLogger replaces the logger used for command logging.
func (s *Store) SetLogger(logger *log.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = logger
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run after every dispatch.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Dispatch applies cmd and notifies subscribers in registration order.
//
// Subscribers run outside the lock and may dispatch.
func (s *Store) Dispatch(cmd Command) {
	s.mu.Lock()
	s.state = Apply(s.state, cmd)
	next := s.state
	subs := append([]Subscriber(nil), s.subscribers...)
	logger := s.logger
	s.mu.Unlock()

	if logger != nil {
		logger.Debug("dispatch", "command", cmd.Kind())
	}

	for _, fn := range subs {
		fn(cmd, next)
	}
}

// ReadState returns [ProjectReadState] of the current state.
func (s *Store) ReadState() ReadState {
	return ProjectReadState(s.State())
}

// WriteOperations returns [ProjectWriteOperations] bound to this store.
func (s *Store) WriteOperations() WriteOperations {
	return ProjectWriteOperations(s.Dispatch)
}

// Navigator returns a [Navigator] that records routes in this store.
func (s *Store) Navigator() Navigator {
	return DispatchNavigator{Dispatch: s.Dispatch}
}
