package repository

import (
	"github.com/abgdnv/gocatalog/internal/catalog/model"
	"github.com/abgdnv/gocatalog/internal/catalog/store"
)

const auditActorIndex = "actor"

// AuditRepository is the typed façade over the audit store. The trail is
// append-mostly: records are created and read, never updated or deleted
// through this façade.
type AuditRepository struct {
	store *store.Store[model.AuditRecord]
}

func NewAuditRepository() *AuditRepository {
	s := store.New[model.AuditRecord](
		func(a model.AuditRecord) int64 { return a.ID },
		func(a model.AuditRecord, id int64) model.AuditRecord { a.ID = id; return a },
	)
	s.AddIndex(auditActorIndex, func(a model.AuditRecord) string { return a.ActorEmail })
	return &AuditRepository{store: s}
}

func (r *AuditRepository) Create(rec model.AuditRecord) model.AuditRecord {
	return r.store.Add(rec)
}

func (r *AuditRepository) FindAll() []model.AuditRecord {
	return r.store.FindAll()
}

// FindByActor returns the records written by the given actor email.
func (r *AuditRepository) FindByActor(email string) []model.AuditRecord {
	return r.store.FindByIndex(auditActorIndex, email)
}
