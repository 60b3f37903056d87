package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/pkg/errs"
)

var (
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrInvalidSearchField = errors.New("search field is not supported")
)

// SearchField names the column a keyword search runs against.
type SearchField string

const (
	SearchPurchaseShopName SearchField = "purchaseShopName"
	SearchSalesShopName    SearchField = "salesShopName"
	SearchProductName      SearchField = "productName"
	SearchOrderNumber      SearchField = "orderNumber"
	SearchConsignee        SearchField = "consignee"
	SearchReceiver         SearchField = "receiver"
	SearchDeliveryAddress  SearchField = "deliveryAddress"
	SearchCorpName         SearchField = "corpName"
)

var searchFields = []SearchField{
	SearchPurchaseShopName, SearchSalesShopName, SearchProductName, SearchOrderNumber,
	SearchConsignee, SearchReceiver, SearchDeliveryAddress, SearchCorpName,
}

// DateField selects which timestamp the start/end bounds apply to.
type DateField string

const (
	DateFieldDelivery DateField = "deliveryDate"
	DateFieldCreated  DateField = "createdAt"
	DateFieldOrder    DateField = "orderDate"
)

// IsValidDateRange is false only when both bounds are present and start is after end.
func IsValidDateRange(start, end *time.Time) bool {
	return start == nil || end == nil || !start.After(*end)
}

// IsValidSearchField accepts an absent field or one of the supported fields.
func IsValidSearchField(field string) bool {
	return field == "" || slices.Contains(searchFields, SearchField(field))
}

// Filter is the optional set of conditions for the filtered order query.
// A zero-valued part means "no restriction".
type Filter struct {
	MemberIDs   []kernel.UUID
	Status      *Status
	Start       *time.Time
	End         *time.Time
	DateField   DateField
	RegionIDs   []kernel.UUID
	SearchField SearchField
	Keyword     string
}

// Validate checks the date range, search field and status. It fills in the
// default date field.
func (f *Filter) Validate() error {
	var rangeErr, fieldErr, statusErr, dateFieldErr error
	if !IsValidDateRange(f.Start, f.End) {
		rangeErr = errs.NewValueIsInvalidErrorWithCause("date range",
			fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, f.Start.Format(time.DateOnly), f.End.Format(time.DateOnly)))
	}
	if !IsValidSearchField(string(f.SearchField)) {
		fieldErr = errs.NewValueIsInvalidErrorWithCause("search field",
			fmt.Errorf("%w: %q", ErrInvalidSearchField, string(f.SearchField)))
	}
	if f.Status != nil {
		statusErr = f.Status.Validate()
	}
	switch f.DateField {
	case "":
		f.DateField = DateFieldDelivery
	case DateFieldDelivery, DateFieldCreated, DateFieldOrder:
	default:
		dateFieldErr = errs.NewValueIsInvalidErrorWithCause("date field",
			fmt.Errorf("%q is not one of deliveryDate, createdAt, orderDate", string(f.DateField)))
	}
	return errors.Join(rangeErr, fieldErr, statusErr, dateFieldErr)
}

// HasKeyword reports whether a keyword search should be applied.
func (f Filter) HasKeyword() bool {
	return f.SearchField != "" && f.Keyword != ""
}
