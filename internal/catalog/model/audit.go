package model

import "time"

// AuditAction names the kind of operation an audit record describes.
type AuditAction string

const (
	ActionCreate AuditAction = "CREATE"
	ActionUpdate AuditAction = "UPDATE"
	ActionDelete AuditAction = "DELETE"
	ActionLogin  AuditAction = "LOGIN"
)

// AuditOutcome records whether the audited operation succeeded.
type AuditOutcome string

const (
	OutcomeSuccess AuditOutcome = "SUCCESS"
	OutcomeFailure AuditOutcome = "FAIL"
)

// AuditRecord is an append-mostly trail entry. ActorEmail must resolve to
// an existing User at write time; records with an unknown actor are
// dropped at the service boundary.
type AuditRecord struct {
	ID         int64
	Timestamp  time.Time
	ActorEmail string
	Action     AuditAction
	Outcome    AuditOutcome
	Detail     string
}
