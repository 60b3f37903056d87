package commands

import (
	"errors"
	"fmt"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/member"
	"flowerorder/internal/pkg/guard"
)

var ErrSaveRegionPricesCommandIsNotConstructed = errors.New(
	"SaveRegionPricesCommand must be created via NewSaveRegionPricesCommand constructor",
)

// SaveRegionPricesCommand replaces a member's delivery districts and category prices.
type SaveRegionPricesCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	regions  []member.RegionPriceInput

	guard guard.ConstructorGuard
}

func NewSaveRegionPricesCommand(
	memberID kernel.UUID,
	regions []member.RegionPriceInput,
) (SaveRegionPricesCommand, error) {
	validations := []error{memberID.Validate()}
	for i, r := range regions {
		if err := r.Validate(); err != nil {
			validations = append(validations, fmt.Errorf("regions[%d]: %w", i, err))
		}
	}
	if err := errors.Join(validations...); err != nil {
		return SaveRegionPricesCommand{}, err
	}

	return SaveRegionPricesCommand{
		memberID: memberID,
		regions:  regions,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SaveRegionPricesCommand) Validate() error {
	return c.guard.Validate(ErrSaveRegionPricesCommandIsNotConstructed)
}

func (c SaveRegionPricesCommand) MemberID() kernel.UUID              { return c.memberID }
func (c SaveRegionPricesCommand) Regions() []member.RegionPriceInput { return c.regions }
