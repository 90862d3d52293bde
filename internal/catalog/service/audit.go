package service

import (
	"log/slog"
	"time"

	"github.com/abgdnv/gocatalog/internal/catalog/model"
	"github.com/abgdnv/gocatalog/internal/catalog/repository"
)

// AuditService writes and reads the audit trail. A record whose actor
// email does not resolve to an existing user is silently dropped: audit
// writes must never become a hard failure path for the operation being
// audited.
type AuditService struct {
	records *repository.AuditRepository
	users   *repository.UserRepository
	logger  *slog.Logger
}

// NewAuditService creates a new AuditService with the provided repositories.
func NewAuditService(records *repository.AuditRepository, users *repository.UserRepository, logger *slog.Logger) *AuditService {
	return &AuditService{
		records: records,
		users:   users,
		logger:  logger.With("component", "audit"),
	}
}

// AuditDto represents the data transfer object for an audit record.
type AuditDto struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Outcome   string    `json:"outcome"`
	Detail    string    `json:"detail,omitempty"`
}

// Record appends a trail entry for the given actor. The write is a no-op
// when the actor does not resolve via the user repository.
func (s *AuditService) Record(actorEmail string, action model.AuditAction, outcome model.AuditOutcome, detail string) {
	if _, err := s.users.FindByEmail(actorEmail); err != nil {
		s.logger.Debug("Audit record dropped, actor does not resolve", "actor", actorEmail, "action", action)
		return
	}
	s.records.Create(model.AuditRecord{
		Timestamp:  time.Now().UTC(),
		ActorEmail: actorEmail,
		Action:     action,
		Outcome:    outcome,
		Detail:     detail,
	})
}

// FindAll returns the whole trail in write order.
func (s *AuditService) FindAll() []AuditDto {
	return toAuditDtos(s.records.FindAll())
}

// FindByActor returns the trail entries written by the given actor email.
func (s *AuditService) FindByActor(email string) []AuditDto {
	return toAuditDtos(s.records.FindByActor(email))
}

func toAuditDtos(records []model.AuditRecord) []AuditDto {
	dtos := make([]AuditDto, len(records))
	for i, rec := range records {
		dtos[i] = AuditDto{
			ID:        rec.ID,
			Timestamp: rec.Timestamp,
			Actor:     rec.ActorEmail,
			Action:    string(rec.Action),
			Outcome:   string(rec.Outcome),
			Detail:    rec.Detail,
		}
	}
	return dtos
}
