// Package commands contains the operations that change orders and members.
// Every handler validates its command, opens one unit of work, mutates the
// aggregate and commits once; a deferred rollback covers every failure path.
package commands

import (
	"context"

	"flowerorder/internal/core/ports"
)

// Unit of Work views narrowed to the repositories each handler needs.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MemberRepoFactory interface {
		MemberRepository() ports.MemberRepository
	}

	CatalogRepoFactory interface {
		RegionRepository() ports.RegionRepository
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW serves commands that only touch an existing order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MemberUoW serves member signup, review and pricing commands.
	MemberUoW interface {
		TxManager
		MemberRepoFactory
	}

	MemberUoWFactory interface {
		Create() MemberUoW
	}

	// UoW spans orders, members and the catalogue; order creation needs all three.
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer func() { _ = uow.Rollback(ctx) }()
	//
	//	owner, err := uow.MemberRepository().Get(ctx, memberID)
	//	// ...
	//	err = uow.OrderRepository().Add(ctx, o)
	//	// ...
	//	return uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		MemberRepoFactory
		CatalogRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
