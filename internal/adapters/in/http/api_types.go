package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Types mirror the schemas of api/openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type OrderStatus string

type SignUpRequest struct {
	LoginId        string `json:"loginId"`
	Name           string `json:"name"`
	Mobile         string `json:"mobile"`
	BusinessNumber string `json:"businessNumber"`
	CorpName       string `json:"corpName"`
	CeoName        string `json:"ceoName,omitempty"`
	CompanyAddress string `json:"companyAddress,omitempty"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type RegionPricesRequest struct {
	Regions []RegionPrice `json:"regions"`
}

type RegionPrice struct {
	Sido    string          `json:"sido"`
	Sigungu string          `json:"sigungu"`
	Handled bool            `json:"handled"`
	Prices  []CategoryPrice `json:"prices,omitempty"`
}

type CategoryPrice struct {
	CategoryName string `json:"categoryName"`
	Price        int64  `json:"price"`
	Available    bool   `json:"available"`
}

type ActivityRegion struct {
	Sido    string `json:"sido"`
	Sigungu string `json:"sigungu"`
	Active  bool   `json:"active"`
}

type ProductPrice struct {
	Sido         string `json:"sido"`
	Sigungu      string `json:"sigungu"`
	CategoryName string `json:"categoryName"`
	Price        int64  `json:"price"`
	Available    bool   `json:"available"`
}

type Member struct {
	Id                openapi_types.UUID `json:"id"`
	LoginId           string             `json:"loginId"`
	Name              string             `json:"name"`
	Mobile            string             `json:"mobile"`
	BusinessNumber    string             `json:"businessNumber"`
	CorpName          string             `json:"corpName"`
	CeoName           string             `json:"ceoName"`
	CompanyAddress    string             `json:"companyAddress"`
	Status            string             `json:"status"`
	StatusDescription string             `json:"statusDescription"`
	ApprovalStatus    string             `json:"approvalStatus"`
	RejectionReason   string             `json:"rejectionReason,omitempty"`
	ActivityRegions   []ActivityRegion   `json:"activityRegions"`
	ProductPrices     []ProductPrice     `json:"productPrices"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

type OrderOption struct {
	Id          *openapi_types.UUID `json:"id,omitempty"`
	Name        string              `json:"name"`
	Checked     bool                `json:"checked"`
	Price       int64               `json:"price"`
	Description string              `json:"description,omitempty"`
}

type OrderMessage struct {
	Id        *openapi_types.UUID `json:"id,omitempty"`
	Text      string              `json:"text"`
	Type      string              `json:"type,omitempty"`
	SortOrder int                 `json:"sortOrder"`
}

type OrderSender struct {
	Id           *openapi_types.UUID `json:"id,omitempty"`
	Name         string              `json:"name"`
	Relationship string              `json:"relationship,omitempty"`
	Phone        string              `json:"phone,omitempty"`
	SortOrder    int                 `json:"sortOrder"`
	IsMain       bool                `json:"isMain"`
}

type ProductImage struct {
	Path         string `json:"path"`
	OriginalName string `json:"originalName"`
	ContentType  string `json:"contentType"`
	Size         int64  `json:"size"`
}

type NewOrder struct {
	OrderType         string              `json:"orderType,omitempty"`
	RegionId          *openapi_types.UUID `json:"regionId,omitempty"`
	ProductId         *openapi_types.UUID `json:"productId,omitempty"`
	ShopName          string              `json:"shopName"`
	ShopPhone         string              `json:"shopPhone"`
	ProductName       string              `json:"productName"`
	ProductDetail     string              `json:"productDetail,omitempty"`
	Quantity          int                 `json:"quantity"`
	OriginPrice       int64               `json:"originPrice,omitempty"`
	Price             int64               `json:"price,omitempty"`
	Payment           int64               `json:"payment"`
	OrdererName       string              `json:"ordererName"`
	OrdererPhone      string              `json:"ordererPhone,omitempty"`
	OrdererMobile     string              `json:"ordererMobile"`
	ReceiverName      string              `json:"receiverName"`
	ReceiverPhone     string              `json:"receiverPhone,omitempty"`
	ReceiverMobile    string              `json:"receiverMobile,omitempty"`
	Consignee         string              `json:"consignee,omitempty"`
	DeliveryDate      openapi_types.Date  `json:"deliveryDate"`
	DeliveryHours     string              `json:"deliveryHours,omitempty"`
	DeliveryMinutes   string              `json:"deliveryMinutes,omitempty"`
	DeliveryType      string              `json:"deliveryType,omitempty"`
	EventHours        string              `json:"eventHours,omitempty"`
	EventMinutes      string              `json:"eventMinutes,omitempty"`
	DeliveryPlace     string              `json:"deliveryPlace"`
	Card              string              `json:"card,omitempty"`
	Request           string              `json:"request,omitempty"`
	HideDeliveryPhoto bool                `json:"hideDeliveryPhoto,omitempty"`
	IsDelivery        *bool               `json:"isDelivery,omitempty"`
	OnSite            bool                `json:"onSite,omitempty"`
	Sms               string              `json:"sms,omitempty"`
	Fax               string              `json:"fax,omitempty"`
	Options           []OrderOption       `json:"options,omitempty"`
	Messages          []OrderMessage      `json:"messages,omitempty"`
	Senders           []OrderSender       `json:"senders,omitempty"`
}

type OrderPatch struct {
	ShopName      *string             `json:"shopName,omitempty"`
	ProductName   *string             `json:"productName,omitempty"`
	ProductDetail *string             `json:"productDetail,omitempty"`
	Quantity      *int                `json:"quantity,omitempty"`
	Price         *int64              `json:"price,omitempty"`
	Payment       *int64              `json:"payment,omitempty"`
	DeliveryDate  *openapi_types.Date `json:"deliveryDate,omitempty"`
	DeliveryPlace *string             `json:"deliveryPlace,omitempty"`
	Request       *string             `json:"request,omitempty"`
}

type StatusUpdate struct {
	Status OrderStatus `json:"status"`
}

type OrderDetail struct {
	Id                openapi_types.UUID  `json:"id"`
	OrderNumber       string              `json:"orderNumber"`
	MemberId          openapi_types.UUID  `json:"memberId"`
	RegionId          *openapi_types.UUID `json:"regionId,omitempty"`
	ProductId         *openapi_types.UUID `json:"productId,omitempty"`
	OrderType         string              `json:"orderType"`
	Status            OrderStatus         `json:"status"`
	StatusDescription string              `json:"statusDescription"`
	ShopName          string              `json:"shopName"`
	ShopPhone         string              `json:"shopPhone"`
	ProductName       string              `json:"productName"`
	ProductDetail     string              `json:"productDetail"`
	Quantity          int                 `json:"quantity"`
	OriginPrice       int64               `json:"originPrice"`
	Price             int64               `json:"price"`
	Payment           int64               `json:"payment"`
	TotalAmount       int64               `json:"totalAmount"`
	OrdererName       string              `json:"ordererName"`
	OrdererPhone      string              `json:"ordererPhone"`
	OrdererMobile     string              `json:"ordererMobile"`
	ReceiverName      string              `json:"receiverName"`
	ReceiverPhone     string              `json:"receiverPhone"`
	ReceiverMobile    string              `json:"receiverMobile"`
	Consignee         string              `json:"consignee"`
	DeliveryDate      openapi_types.Date  `json:"deliveryDate"`
	DeliveryTime      string              `json:"deliveryTime"`
	EventTime         string              `json:"eventTime"`
	DeliveryType      string              `json:"deliveryType"`
	DeliveryPlace     string              `json:"deliveryPlace"`
	Card              string              `json:"card"`
	Request           string              `json:"request"`
	HideDeliveryPhoto bool                `json:"hideDeliveryPhoto"`
	IsDelivery        bool                `json:"isDelivery"`
	OnSite            bool                `json:"onSite"`
	Sms               string              `json:"sms"`
	Fax               string              `json:"fax"`
	Options           []OrderOption       `json:"options"`
	Messages          []OrderMessage      `json:"messages"`
	Senders           []OrderSender       `json:"senders"`
	ProductImage      *ProductImage       `json:"productImage,omitempty"`
	CanBeCancelled    bool                `json:"canBeCancelled"`
	CanBeModified     bool                `json:"canBeModified"`
	Version           int                 `json:"version"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

type OrderListItem struct {
	Id              openapi_types.UUID `json:"id"`
	OrderNumber     string             `json:"orderNumber"`
	OrderType       string             `json:"orderType"`
	OrderDate       string             `json:"orderDate"`
	OrderTime       string             `json:"orderTime"`
	DeliveryDate    string             `json:"deliveryDate"`
	DeliveryTime    string             `json:"deliveryTime"`
	Sender          string             `json:"sender"`
	Receiver        string             `json:"receiver"`
	ShopName        string             `json:"shopName"`
	ProductName     string             `json:"productName"`
	DeliveryAddress string             `json:"deliveryAddress"`
	OriginPrice     int64              `json:"originPrice"`
	Payment         int64              `json:"payment"`
	TotalAmount     int64              `json:"totalAmount"`
	Sms             string             `json:"sms"`
	Fax             string             `json:"fax"`
	Status          OrderStatus        `json:"status"`
	DeliveryStatus  string             `json:"deliveryStatus"`
	Consignee       string             `json:"consignee"`
	IsDelivery      bool               `json:"isDelivery"`
	OnSite          bool               `json:"onSite"`
	HasProductImage bool               `json:"hasProductImage"`
}

type OrderPage struct {
	Content       []OrderListItem `json:"content"`
	Page          int             `json:"page"`
	Size          int             `json:"size"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
	First         bool            `json:"first"`
	Last          bool            `json:"last"`
}

type OrderSummary struct {
	TotalCount      int64 `json:"totalCount"`
	MonthCount      int64 `json:"monthCount"`
	DeliveredCount  int64 `json:"deliveredCount"`
	InProgressCount int64 `json:"inProgressCount"`
}

// OrderSearchParams are the query parameters shared by the member and admin searches.
type OrderSearchParams struct {
	MemberIds   *[]openapi_types.UUID `form:"memberIds,omitempty" json:"memberIds,omitempty"`
	Status      *OrderStatus          `form:"status,omitempty" json:"status,omitempty"`
	StartDate   *openapi_types.Date   `form:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     *openapi_types.Date   `form:"endDate,omitempty" json:"endDate,omitempty"`
	DateField   *string               `form:"dateField,omitempty" json:"dateField,omitempty"`
	RegionIds   *[]openapi_types.UUID `form:"regionIds,omitempty" json:"regionIds,omitempty"`
	SearchField *string               `form:"searchField,omitempty" json:"searchField,omitempty"`
	Keyword     *string               `form:"keyword,omitempty" json:"keyword,omitempty"`
	Page        *int                  `form:"page,omitempty" json:"page,omitempty"`
	Size        *int                  `form:"size,omitempty" json:"size,omitempty"`
	Sort        *string               `form:"sort,omitempty" json:"sort,omitempty"`
	Direction   *string               `form:"direction,omitempty" json:"direction,omitempty"`
}

type DeleteOrderParams struct {
	XActor string `json:"X-Actor"`
}
