package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"
	"pet-world-gateway/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionService owns the single account session and its provider handle.
// A session is created on connect and disposed on disconnect; nothing else
// holds the handle.
type SessionService struct {
	connector ports.ChainConnector
	log       zerolog.Logger
	now       func() time.Time

	connectMu sync.Mutex // serializes Connect and Disconnect
	mu        sync.RWMutex
	session   *domain.Session
	conn      ports.ChainConnection
}

// NewSessionService creates a session service over a provider connector.
func NewSessionService(connector ports.ChainConnector, log zerolog.Logger) *SessionService {
	return &SessionService{
		connector: connector,
		log:       logger.Component(log, "session"),
		now:       time.Now,
	}
}

// Connect replaces any existing session with a new one for the first
// authorized account.
func (s *SessionService) Connect(ctx context.Context) (*domain.Session, ports.ChainConnection, error) {
	s.connectMu.Lock()
	defer s.connectMu.Unlock()

	s.teardown()

	s.mu.Lock()
	s.session = &domain.Session{Status: domain.SessionConnecting}
	s.mu.Unlock()

	sess, conn, err := s.open(ctx)
	if err != nil {
		s.mu.Lock()
		s.session = nil
		s.mu.Unlock()
		return nil, nil, err
	}

	s.mu.Lock()
	s.session = sess
	s.conn = conn
	s.mu.Unlock()

	s.log.Info().
		Str("session_id", sess.ID.String()).
		Str("account", logger.ShortAccount(sess.Account)).
		Int64("chain_id", sess.ChainID).
		Msg("session connected")

	out := *sess
	return &out, conn, nil
}

func (s *SessionService) open(ctx context.Context) (*domain.Session, ports.ChainConnection, error) {
	conn, err := s.connector.Connect(ctx)
	if err != nil {
		return nil, nil, err
	}

	accounts, err := conn.RequestAccounts(ctx)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	if len(accounts) == 0 || accounts[0] == "" {
		conn.Close()
		return nil, nil, domain.ErrNoAccount
	}

	chainID, err := conn.ChainID(ctx)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("reading chain id: %w", err)
	}

	return &domain.Session{
		ID:          uuid.New(),
		Account:     accounts[0],
		ChainID:     chainID,
		Status:      domain.SessionConnected,
		ConnectedAt: s.now().UTC(),
	}, conn, nil
}

// Disconnect closes the provider handle and forgets the session. It returns
// the session that was torn down, or nil.
func (s *SessionService) Disconnect() *domain.Session {
	s.connectMu.Lock()
	defer s.connectMu.Unlock()
	return s.teardown()
}

func (s *SessionService) teardown() *domain.Session {
	s.mu.Lock()
	sess, conn := s.session, s.conn
	s.session, s.conn = nil, nil
	s.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
	if sess != nil && sess.Status == domain.SessionConnected {
		s.log.Info().Str("session_id", sess.ID.String()).Msg("session disconnected")
		return sess
	}
	return nil
}

// Current returns a copy of the session, or nil when disconnected.
func (s *SessionService) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	out := *s.session
	return &out
}

// Connection returns the active session and its handle.
func (s *SessionService) Connection() (*domain.Session, ports.ChainConnection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.session.IsActive() || s.conn == nil {
		return nil, nil, domain.ErrNoSession
	}
	out := *s.session
	return &out, s.conn, nil
}
