package service

import (
	"context"
	"sync"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"
	"pet-world-gateway/pkg/logger"

	"github.com/rs/zerolog"
)

// AuditService writes audit entries to the log and, when a repository is
// configured, persists them in the background.
type AuditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
	wg   sync.WaitGroup
}

// NewAuditService creates a new audit service.
// If repo is nil, audit logs are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, log: log}
}

// Log records an audit entry asynchronously (fire-and-forget).
func (s *AuditService) Log(ctx context.Context, entry *domain.AuditLog) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ev := s.log.Info().
			Str("action", string(entry.Action)).
			Str("resource_type", entry.ResourceType).
			Str("resource_id", entry.ResourceID).
			Str("ip", entry.IPAddress)
		if entry.Account != "" {
			ev = ev.Str("account", logger.ShortAccount(entry.Account))
		}
		ev.Msg("audit")

		if s.repo != nil {
			if err := s.repo.Create(context.WithoutCancel(ctx), entry); err != nil {
				s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
			}
		}
	}()
}

// Wait blocks until pending entries are written. Used on shutdown.
func (s *AuditService) Wait() {
	s.wg.Wait()
}
