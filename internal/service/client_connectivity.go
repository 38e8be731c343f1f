package service

import "sync"

// manualConnectivitySignal is a host-driven ConnectivitySignal: the embedding
// environment reports transitions via Set and subscribers react to them. It
// carries no probing logic of its own.
type manualConnectivitySignal struct {
	mu             sync.Mutex
	online         bool
	listeners      map[int]func(online bool)
	nextListenerID int
}

// NewConnectivitySignal constructs a manual connectivity signal starting in
// the online state.
func NewConnectivitySignal() ConnectivitySignal {
	return &manualConnectivitySignal{
		online:    true,
		listeners: make(map[int]func(online bool)),
	}
}

// Online implements ConnectivitySignal.
func (s *manualConnectivitySignal) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

// Set implements ConnectivitySignal. Listeners are notified only on an actual
// transition, outside the mutex.
func (s *manualConnectivitySignal) Set(online bool) {
	s.mu.Lock()
	if s.online == online {
		s.mu.Unlock()
		return
	}
	s.online = online
	listeners := make([]func(online bool), 0, len(s.listeners))
	for _, listener := range s.listeners {
		listeners = append(listeners, listener)
	}
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(online)
	}
}

// Subscribe implements ConnectivitySignal.
func (s *manualConnectivitySignal) Subscribe(listener func(online bool)) func() {
	s.mu.Lock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
