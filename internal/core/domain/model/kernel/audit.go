package kernel

import "time"

// Audit is the creation/update/soft-delete trail shared by persisted aggregates.
// It is an immutable value; mutators return a new copy.
type Audit struct {
	createdAt time.Time
	updatedAt time.Time
	deleted   bool
	deletedBy string
	deletedAt *time.Time
}

func NewAudit(now time.Time) Audit {
	return Audit{createdAt: now, updatedAt: now}
}

// RestoreAudit rebuilds an Audit read from storage.
func RestoreAudit(createdAt, updatedAt time.Time, deleted bool, deletedBy string, deletedAt *time.Time) Audit {
	return Audit{
		createdAt: createdAt,
		updatedAt: updatedAt,
		deleted:   deleted,
		deletedBy: deletedBy,
		deletedAt: deletedAt,
	}
}

func (a Audit) Touch(now time.Time) Audit {
	a.updatedAt = now
	return a
}

// MarkDeleted records a soft delete by actor.
func (a Audit) MarkDeleted(actor string, now time.Time) Audit {
	a.deleted = true
	a.deletedBy = actor
	a.deletedAt = &now
	a.updatedAt = now
	return a
}

func (a Audit) CreatedAt() time.Time  { return a.createdAt }
func (a Audit) UpdatedAt() time.Time  { return a.updatedAt }
func (a Audit) IsDeleted() bool       { return a.deleted }
func (a Audit) DeletedBy() string     { return a.deletedBy }
func (a Audit) DeletedAt() *time.Time { return a.deletedAt }
