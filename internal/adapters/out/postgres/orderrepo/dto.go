// Package orderrepo maps the order aggregate onto the orders table and its
// option, message and sender child tables.
package orderrepo

import (
	"errors"
	"time"

	"flowerorder/internal/adapters/out/postgres/columns"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Children are written once with the
// order and never rewritten by Update.
type OrderDTO struct {
	ID          columns.UUID  `gorm:"primaryKey"`
	OrderNumber string        `gorm:"type:varchar(6);not null;uniqueIndex"`
	MemberID    columns.UUID  `gorm:"not null;index"`
	RegionID    *columns.UUID `gorm:"index"`
	ProductID   *columns.UUID `gorm:"index"`
	OrderType   string        `gorm:"type:varchar(10);not null"`
	Status      string        `gorm:"type:varchar(20);not null;index"`

	ShopName      string          `gorm:"type:varchar(100);not null"`
	ShopPhone     string          `gorm:"type:varchar(20);not null"`
	ProductName   string          `gorm:"type:varchar(200);not null"`
	ProductDetail string          `gorm:"type:varchar(500)"`
	Quantity      int             `gorm:"not null"`
	OriginPrice   decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	Price         decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	Payment       decimal.Decimal `gorm:"type:decimal(12,0);not null"`

	OrdererName   string `gorm:"type:varchar(50)"`
	OrdererPhone  string `gorm:"type:varchar(20)"`
	OrdererMobile string `gorm:"type:varchar(20)"`

	ReceiverName   string `gorm:"type:varchar(50);not null"`
	ReceiverPhone  string `gorm:"type:varchar(20)"`
	ReceiverMobile string `gorm:"type:varchar(20)"`
	Consignee      string `gorm:"type:varchar(50)"`

	DeliveryDate    time.Time `gorm:"type:date;not null;index"`
	DeliveryHours   string    `gorm:"type:varchar(10)"`
	DeliveryMinutes string    `gorm:"type:varchar(10)"`
	DeliveryType    string    `gorm:"type:varchar(20)"`
	EventHours      string    `gorm:"type:varchar(10)"`
	EventMinutes    string    `gorm:"type:varchar(10)"`
	DeliveryPlace   string    `gorm:"type:varchar(500);not null"`

	Card              string `gorm:"type:varchar(50)"`
	Request           string `gorm:"type:varchar(1000)"`
	HideDeliveryPhoto bool   `gorm:"not null;default:false"`
	IsDelivery        bool   `gorm:"not null"`
	OnSite            bool   `gorm:"not null;default:false"`
	SMS               string `gorm:"column:sms;type:varchar(10)"`
	Fax               string `gorm:"column:fax;type:varchar(10)"`

	ProductImage ProductImageDTO `gorm:"embedded;embeddedPrefix:product_image_"`

	IsDeleted bool   `gorm:"not null;default:false;index"`
	DeletedBy string `gorm:"type:varchar(100)"`
	DeletedAt *time.Time
	CreatedAt time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
	Version   int       `gorm:"not null;default:0"`

	Options  []OptionDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Messages []MessageDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Senders  []SenderDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ProductImageDTO is the image metadata embedded in the order row. An empty
// path means no image.
type ProductImageDTO struct {
	Path         string `gorm:"type:varchar(500)"`
	OriginalName string `gorm:"type:varchar(255)"`
	ContentType  string `gorm:"type:varchar(50)"`
	Size         int64
}

type OptionDTO struct {
	ID          columns.UUID    `gorm:"primaryKey"`
	OrderID     columns.UUID    `gorm:"not null;index"`
	Position    int             `gorm:"not null"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Checked     bool            `gorm:"not null;default:false"`
	Price       decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	Description string          `gorm:"type:varchar(200)"`
}

func (OptionDTO) TableName() string {
	return "order_options"
}

type MessageDTO struct {
	ID        columns.UUID `gorm:"primaryKey"`
	OrderID   columns.UUID `gorm:"not null;index"`
	Position  int          `gorm:"not null"`
	Text      string       `gorm:"type:varchar(500);not null"`
	Type      string       `gorm:"type:varchar(20);not null"`
	SortOrder int          `gorm:"not null;default:0"`
}

func (MessageDTO) TableName() string {
	return "order_messages"
}

type SenderDTO struct {
	ID           columns.UUID `gorm:"primaryKey"`
	OrderID      columns.UUID `gorm:"not null;index"`
	Position     int          `gorm:"not null"`
	Name         string       `gorm:"type:varchar(50);not null"`
	Relationship string       `gorm:"type:varchar(100)"`
	Phone        string       `gorm:"type:varchar(20)"`
	SortOrder    int          `gorm:"not null;default:0"`
	IsMain       bool         `gorm:"not null;default:false"`
}

func (SenderDTO) TableName() string {
	return "order_senders"
}

func fromDomain(o *order.Order) OrderDTO {
	id := columns.FromKernel(o.ID())
	d := o.Details()
	audit := o.Audit()

	dto := OrderDTO{
		ID:          id,
		OrderNumber: o.Number().String(),
		MemberID:    columns.FromKernel(o.MemberID()),
		RegionID:    columns.FromKernelPtr(o.RegionID()),
		ProductID:   columns.FromKernelPtr(o.ProductID()),
		OrderType:   o.Type().String(),
		Status:      o.Status().String(),

		ShopName:      d.ShopName,
		ShopPhone:     d.ShopPhone,
		ProductName:   d.ProductName,
		ProductDetail: d.ProductDetail,
		Quantity:      d.Quantity,
		OriginPrice:   d.OriginPrice.Decimal(),
		Price:         d.Price.Decimal(),
		Payment:       d.Payment.Decimal(),

		OrdererName:   d.OrdererName,
		OrdererPhone:  d.OrdererPhone,
		OrdererMobile: d.OrdererMobile,

		ReceiverName:   d.ReceiverName,
		ReceiverPhone:  d.ReceiverPhone,
		ReceiverMobile: d.ReceiverMobile,
		Consignee:      d.Consignee,

		DeliveryDate:    kernel.DateOf(d.DeliveryDate),
		DeliveryHours:   d.DeliveryHours,
		DeliveryMinutes: d.DeliveryMinutes,
		DeliveryType:    d.DeliveryType,
		EventHours:      d.EventHours,
		EventMinutes:    d.EventMinutes,
		DeliveryPlace:   d.DeliveryPlace,

		Card:              d.Card,
		Request:           d.Request,
		HideDeliveryPhoto: d.HideDeliveryPhoto,
		IsDelivery:        d.IsDelivery,
		OnSite:            d.OnSite,
		SMS:               string(d.SMS),
		Fax:               string(d.Fax),

		IsDeleted: audit.IsDeleted(),
		DeletedBy: audit.DeletedBy(),
		DeletedAt: audit.DeletedAt(),
		CreatedAt: audit.CreatedAt(),
		UpdatedAt: audit.UpdatedAt(),
		Version:   o.Version(),
	}

	if img := o.ProductImage(); img != nil {
		dto.ProductImage = ProductImageDTO{
			Path:         img.Path,
			OriginalName: img.OriginalName,
			ContentType:  img.ContentType,
			Size:         img.Size,
		}
	}

	for i, opt := range o.Options() {
		dto.Options = append(dto.Options, OptionDTO{
			ID:          columns.FromKernel(opt.ID()),
			OrderID:     id,
			Position:    i,
			Name:        opt.Name(),
			Checked:     opt.Checked(),
			Price:       opt.Price().Decimal(),
			Description: opt.Description(),
		})
	}
	for i, m := range o.Messages() {
		dto.Messages = append(dto.Messages, MessageDTO{
			ID:        columns.FromKernel(m.ID()),
			OrderID:   id,
			Position:  i,
			Text:      m.Text(),
			Type:      string(m.Type()),
			SortOrder: m.SortOrder(),
		})
	}
	for i, s := range o.Senders() {
		dto.Senders = append(dto.Senders, SenderDTO{
			ID:           columns.FromKernel(s.ID()),
			OrderID:      id,
			Position:     i,
			Name:         s.Name(),
			Relationship: s.Relationship(),
			Phone:        s.Phone(),
			SortOrder:    s.SortOrder(),
			IsMain:       s.IsMain(),
		})
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := dto.ID.Kernel()
	if err != nil {
		return nil, err
	}
	memberID, err := dto.MemberID.Kernel()
	if err != nil {
		return nil, err
	}
	regionID, err := columns.KernelPtr(dto.RegionID)
	if err != nil {
		return nil, err
	}
	productID, err := columns.KernelPtr(dto.ProductID)
	if err != nil {
		return nil, err
	}
	number, err := order.NewNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}
	money, err := restoreMoney(dto.OriginPrice, dto.Price, dto.Payment)
	if err != nil {
		return nil, err
	}

	options, err := restoreOptions(id, dto.Options)
	if err != nil {
		return nil, err
	}
	messages, err := restoreMessages(id, dto.Messages)
	if err != nil {
		return nil, err
	}
	senders, err := restoreSenders(id, dto.Senders)
	if err != nil {
		return nil, err
	}

	var image *order.ProductImage
	if dto.ProductImage.Path != "" {
		image = &order.ProductImage{
			Path:         dto.ProductImage.Path,
			OriginalName: dto.ProductImage.OriginalName,
			ContentType:  dto.ProductImage.ContentType,
			Size:         dto.ProductImage.Size,
		}
	}

	return order.RestoreOrder(order.Snapshot{
		ID:        id,
		Number:    number,
		MemberID:  memberID,
		RegionID:  regionID,
		ProductID: productID,
		Type:      order.Type(dto.OrderType),
		Status:    order.Status(dto.Status),
		Details: order.Details{
			ShopName:          dto.ShopName,
			ShopPhone:         dto.ShopPhone,
			ProductName:       dto.ProductName,
			ProductDetail:     dto.ProductDetail,
			Quantity:          dto.Quantity,
			OriginPrice:       money[0],
			Price:             money[1],
			Payment:           money[2],
			OrdererName:       dto.OrdererName,
			OrdererPhone:      dto.OrdererPhone,
			OrdererMobile:     dto.OrdererMobile,
			ReceiverName:      dto.ReceiverName,
			ReceiverPhone:     dto.ReceiverPhone,
			ReceiverMobile:    dto.ReceiverMobile,
			Consignee:         dto.Consignee,
			DeliveryDate:      kernel.DateOf(dto.DeliveryDate),
			DeliveryHours:     dto.DeliveryHours,
			DeliveryMinutes:   dto.DeliveryMinutes,
			DeliveryType:      dto.DeliveryType,
			EventHours:        dto.EventHours,
			EventMinutes:      dto.EventMinutes,
			DeliveryPlace:     dto.DeliveryPlace,
			Card:              dto.Card,
			Request:           dto.Request,
			HideDeliveryPhoto: dto.HideDeliveryPhoto,
			IsDelivery:        dto.IsDelivery,
			OnSite:            dto.OnSite,
			SMS:               order.NotificationStatus(dto.SMS),
			Fax:               order.NotificationStatus(dto.Fax),
		},
		Options:      options,
		Messages:     messages,
		Senders:      senders,
		ProductImage: image,
		Audit:        kernel.RestoreAudit(dto.CreatedAt, dto.UpdatedAt, dto.IsDeleted, dto.DeletedBy, dto.DeletedAt),
		Version:      dto.Version,
	})
}

func restoreMoney(amounts ...decimal.Decimal) ([]kernel.Money, error) {
	out := make([]kernel.Money, 0, len(amounts))
	var errList []error
	for _, a := range amounts {
		m, err := kernel.MoneyFromDecimal(a)
		errList = append(errList, err)
		out = append(out, m)
	}
	return out, errors.Join(errList...)
}

func restoreOptions(orderID kernel.UUID, dtos []OptionDTO) ([]order.Option, error) {
	out := make([]order.Option, 0, len(dtos))
	for _, dto := range dtos {
		id, err := dto.ID.Kernel()
		if err != nil {
			return nil, err
		}
		price, err := kernel.MoneyFromDecimal(dto.Price)
		if err != nil {
			return nil, err
		}
		out = append(out, order.RestoreOption(id, orderID, order.OptionSpec{
			Name:        dto.Name,
			Checked:     dto.Checked,
			Price:       price,
			Description: dto.Description,
		}))
	}
	return out, nil
}

func restoreMessages(orderID kernel.UUID, dtos []MessageDTO) ([]order.Message, error) {
	out := make([]order.Message, 0, len(dtos))
	for _, dto := range dtos {
		id, err := dto.ID.Kernel()
		if err != nil {
			return nil, err
		}
		out = append(out, order.RestoreMessage(id, orderID, order.MessageSpec{
			Text:      dto.Text,
			Type:      order.MessageType(dto.Type),
			SortOrder: dto.SortOrder,
		}))
	}
	return out, nil
}

func restoreSenders(orderID kernel.UUID, dtos []SenderDTO) ([]order.Sender, error) {
	out := make([]order.Sender, 0, len(dtos))
	for _, dto := range dtos {
		id, err := dto.ID.Kernel()
		if err != nil {
			return nil, err
		}
		out = append(out, order.RestoreSender(id, orderID, order.SenderSpec{
			Name:         dto.Name,
			Relationship: dto.Relationship,
			Phone:        dto.Phone,
			SortOrder:    dto.SortOrder,
			IsMain:       dto.IsMain,
		}))
	}
	return out, nil
}
