// Package session holds the per-client mutable state of one query
// session: the configured proxy, its connection state and the last
// error. Keeping this explicit (rather than ambient) lets a server
// host one session per client.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/twstock/tracker/internal/core"
	"github.com/twstock/tracker/internal/twse"
)

// Session is single-writer: one client drives it at a time, but reads
// may come from other goroutines in a server deployment.
type Session struct {
	id     string
	logger *zap.Logger

	mu      sync.RWMutex
	client  *twse.Client
	state   core.ConnectionState
	lastErr error
}

// New creates a disconnected session.
func New(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		id:     uuid.NewString(),
		logger: logger,
		state:  core.StateDisconnected,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// SetProxyURL configures the proxy base URL and resets the connection
// state, discarding any prior probe outcome.
func (s *Session) SetProxyURL(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = twse.New(raw)
	s.state = core.StateDisconnected
	s.lastErr = nil
}

// Client returns the proxy client, or nil when no URL is configured.
func (s *Session) Client() *twse.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

// State returns the current connection state.
func (s *Session) State() core.ConnectionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// LastError returns the most recent probe error, if any.
func (s *Session) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Probe tests proxy reachability and records the outcome in the
// connection state.
func (s *Session) Probe(ctx context.Context) error {
	s.mu.Lock()
	client := s.client
	if client == nil {
		s.state = core.StateFailed
		s.lastErr = core.ErrProxyUnset
		s.mu.Unlock()
		return core.ErrProxyUnset
	}
	s.state = core.StateTesting
	s.mu.Unlock()

	endpoint, err := client.Probe(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = core.StateFailed
		s.lastErr = err
		s.logger.Warn("proxy probe failed",
			zap.String("session", s.id),
			zap.String("base_url", client.BaseURL()),
			zap.Error(err),
		)
		return err
	}

	s.state = core.StateConnected
	s.lastErr = nil
	s.logger.Info("proxy connected",
		zap.String("session", s.id),
		zap.String("endpoint", endpoint),
	)
	return nil
}

// ForceManual marks the session usable without a successful probe, for
// environments where the health endpoints are blocked but the data
// endpoints still answer.
func (s *Session) ForceManual() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return core.ErrProxyUnset
	}
	s.state = core.StateManual
	s.lastErr = nil
	s.logger.Info("manual override enabled", zap.String("session", s.id))
	return nil
}
