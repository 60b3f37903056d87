package kernel_test

import (
	"testing"
	"time"

	"flowerorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudit_Lifecycle(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	a := kernel.NewAudit(created)

	assert.Equal(t, created, a.CreatedAt())
	assert.Equal(t, created, a.UpdatedAt())
	assert.False(t, a.IsDeleted())
	assert.Nil(t, a.DeletedAt())

	touched := a.Touch(created.Add(time.Hour))
	assert.Equal(t, created.Add(time.Hour), touched.UpdatedAt())
	assert.Equal(t, created, a.UpdatedAt(), "original value must stay unchanged")

	deletedAt := created.Add(2 * time.Hour)
	deleted := touched.MarkDeleted("admin", deletedAt)
	assert.True(t, deleted.IsDeleted())
	assert.Equal(t, "admin", deleted.DeletedBy())
	require.NotNil(t, deleted.DeletedAt())
	assert.Equal(t, deletedAt, *deleted.DeletedAt())
	assert.Equal(t, created, deleted.CreatedAt())
}

func TestRestoreAudit(t *testing.T) {
	at := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	a := kernel.RestoreAudit(at, at, true, "system", &at)

	assert.True(t, a.IsDeleted())
	assert.Equal(t, "system", a.DeletedBy())
}
