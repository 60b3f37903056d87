package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"flowerorder/internal/core/domain/model/order"
)

// MaxNumberAttempts bounds the draw-and-check loop of OrderNumberGenerator.
const MaxNumberAttempts = 100

// ErrOrderNumberGenerationExhausted is returned when every attempt hit a number
// already in use. The caller may retry the whole request.
var ErrOrderNumberGenerationExhausted = errors.New("order number generation exhausted, try again later")

// RandomSource yields a uniform integer in [0, n).
type RandomSource interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// DefaultRandomSource draws from the goroutine-safe math/rand/v2 global generator.
var DefaultRandomSource RandomSource = globalRandom{}

// NumberExistenceChecker is the uniqueness predicate of the order store.
type NumberExistenceChecker interface {
	ExistsByOrderNumber(ctx context.Context, number order.Number) (bool, error)
}

// OrderNumberGenerator draws six-digit numbers in [order.MinNumber, order.MaxNumber]
// until the store reports one unused. No set of used numbers is cached; every
// candidate is checked against the store.
//
//	gen := services.NewOrderNumberGenerator(services.DefaultRandomSource)
//	number, err := gen.Generate(ctx, uow.OrderRepository())
//	if errors.Is(err, services.ErrOrderNumberGenerationExhausted) {
//	    // surface as retryable
//	}
type OrderNumberGenerator struct {
	random RandomSource
}

func NewOrderNumberGenerator(random RandomSource) OrderNumberGenerator {
	if random == nil {
		random = DefaultRandomSource
	}
	return OrderNumberGenerator{random: random}
}

// Generate returns an unused number or ErrOrderNumberGenerationExhausted after
// MaxNumberAttempts collisions. Store errors abort immediately.
func (g OrderNumberGenerator) Generate(ctx context.Context, checker NumberExistenceChecker) (order.Number, error) {
	const span = order.MaxNumber - order.MinNumber + 1

	for range MaxNumberAttempts {
		if err := ctx.Err(); err != nil {
			return order.Number{}, err
		}

		candidate, err := order.NumberFromInt(order.MinNumber + g.random.IntN(span))
		if err != nil {
			return order.Number{}, err
		}

		exists, err := checker.ExistsByOrderNumber(ctx, candidate)
		if err != nil {
			return order.Number{}, fmt.Errorf("check order number %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return order.Number{}, ErrOrderNumberGenerationExhausted
}
