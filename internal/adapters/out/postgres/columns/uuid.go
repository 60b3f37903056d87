// Package columns holds GORM column types shared by the repositories.
package columns

import (
	"database/sql/driver"
	"fmt"

	"flowerorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// UUID is stored as a native uuid column on PostgreSQL and as char(36) on MySQL.
type UUID uuid.UUID

func FromKernel(id kernel.UUID) UUID {
	return UUID(id.Bytes())
}

// FromKernelPtr maps an optional reference, keeping nil.
func FromKernelPtr(id *kernel.UUID) *UUID {
	if id == nil {
		return nil
	}
	u := FromKernel(*id)
	return &u
}

func (u UUID) Kernel() (kernel.UUID, error) {
	raw := uuid.UUID(u)
	return kernel.UUIDFromBytes(raw[:])
}

// KernelPtr is the inverse of FromKernelPtr.
func KernelPtr(u *UUID) (*kernel.UUID, error) {
	if u == nil {
		return nil, nil
	}
	id, err := u.Kernel()
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (u UUID) String() string {
	return uuid.UUID(u).String()
}

func (u UUID) Value() (driver.Value, error) {
	return uuid.UUID(u).String(), nil
}

func (u *UUID) Scan(src any) error {
	var raw uuid.UUID
	if err := raw.Scan(src); err != nil {
		return fmt.Errorf("scan uuid column: %w", err)
	}
	*u = UUID(raw)
	return nil
}

func (UUID) GormDataType() string {
	return "uuid"
}

func (UUID) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "mysql" {
		return "char(36)"
	}
	return "uuid"
}

// UUIDs maps a list of ids for IN clauses.
func UUIDs(ids []kernel.UUID) []UUID {
	out := make([]UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, FromKernel(id))
	}
	return out
}
