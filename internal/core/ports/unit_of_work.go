package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction spanning every repository it hands out.
// Events of order aggregates written through it are published after Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	MemberRepository() MemberRepository
	RegionRepository() RegionRepository
	ProductRepository() ProductRepository
}
