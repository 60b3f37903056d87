package http

import (
	"time"

	"flowerorder/internal/core/application/usecases/queries"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/member"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/pkg/paging"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toKernelUUIDPtr(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	k, err := toKernelUUID(*id)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func toKernelUUIDs(ids *[]openapi_types.UUID) ([]kernel.UUID, error) {
	if ids == nil {
		return nil, nil
	}
	out := make([]kernel.UUID, 0, len(*ids))
	for _, id := range *ids {
		k, err := toKernelUUID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func fromKernelUUIDPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	b := id.Bytes()
	return &b
}

func (r SignUpRequest) toRegistration() member.Registration {
	return member.Registration{
		LoginID: r.LoginId,
		Name:    r.Name,
		Mobile:  r.Mobile,
		Profile: member.BusinessProfile{
			BusinessNumber: r.BusinessNumber,
			CorpName:       r.CorpName,
			CeoName:        r.CeoName,
			CompanyAddress: r.CompanyAddress,
		},
	}
}

func (r RegionPricesRequest) toInputs() []member.RegionPriceInput {
	inputs := make([]member.RegionPriceInput, 0, len(r.Regions))
	for _, region := range r.Regions {
		in := member.RegionPriceInput{Sido: region.Sido, Sigungu: region.Sigungu, Handled: region.Handled}
		for _, p := range region.Prices {
			in.Prices = append(in.Prices, member.CategoryPriceInput{
				CategoryName: p.CategoryName,
				Price:        kernel.NewMoney(p.Price),
				Available:    p.Available,
			})
		}
		inputs = append(inputs, in)
	}
	return inputs
}

func (n NewOrder) toDraft() (order.Draft, error) {
	regionID, err := toKernelUUIDPtr(n.RegionId)
	if err != nil {
		return order.Draft{}, err
	}
	productID, err := toKernelUUIDPtr(n.ProductId)
	if err != nil {
		return order.Draft{}, err
	}

	isDelivery := true
	if n.IsDelivery != nil {
		isDelivery = *n.IsDelivery
	}

	draft := order.Draft{
		Type:      order.Type(n.OrderType),
		RegionID:  regionID,
		ProductID: productID,
		Details: order.Details{
			ShopName:          n.ShopName,
			ShopPhone:         n.ShopPhone,
			ProductName:       n.ProductName,
			ProductDetail:     n.ProductDetail,
			Quantity:          n.Quantity,
			OriginPrice:       kernel.NewMoney(n.OriginPrice),
			Price:             kernel.NewMoney(n.Price),
			Payment:           kernel.NewMoney(n.Payment),
			OrdererName:       n.OrdererName,
			OrdererPhone:      n.OrdererPhone,
			OrdererMobile:     n.OrdererMobile,
			ReceiverName:      n.ReceiverName,
			ReceiverPhone:     n.ReceiverPhone,
			ReceiverMobile:    n.ReceiverMobile,
			Consignee:         n.Consignee,
			DeliveryDate:      n.DeliveryDate.Time,
			DeliveryHours:     n.DeliveryHours,
			DeliveryMinutes:   n.DeliveryMinutes,
			DeliveryType:      n.DeliveryType,
			EventHours:        n.EventHours,
			EventMinutes:      n.EventMinutes,
			DeliveryPlace:     n.DeliveryPlace,
			Card:              n.Card,
			Request:           n.Request,
			HideDeliveryPhoto: n.HideDeliveryPhoto,
			IsDelivery:        isDelivery,
			OnSite:            n.OnSite,
			SMS:               order.NotificationStatus(n.Sms),
			Fax:               order.NotificationStatus(n.Fax),
		},
	}
	for _, o := range n.Options {
		draft.Options = append(draft.Options, order.OptionSpec{
			Name:        o.Name,
			Checked:     o.Checked,
			Price:       kernel.NewMoney(o.Price),
			Description: o.Description,
		})
	}
	for _, m := range n.Messages {
		draft.Messages = append(draft.Messages, order.MessageSpec{
			Text:      m.Text,
			Type:      order.MessageType(m.Type),
			SortOrder: m.SortOrder,
		})
	}
	for _, s := range n.Senders {
		draft.Senders = append(draft.Senders, order.SenderSpec{
			Name:         s.Name,
			Relationship: s.Relationship,
			Phone:        s.Phone,
			SortOrder:    s.SortOrder,
			IsMain:       s.IsMain,
		})
	}
	return draft, nil
}

func (p OrderPatch) toPatch() order.Patch {
	patch := order.Patch{
		ShopName:      p.ShopName,
		ProductName:   p.ProductName,
		ProductDetail: p.ProductDetail,
		Quantity:      p.Quantity,
		DeliveryPlace: p.DeliveryPlace,
		Request:       p.Request,
	}
	if p.Price != nil {
		m := kernel.NewMoney(*p.Price)
		patch.Price = &m
	}
	if p.Payment != nil {
		m := kernel.NewMoney(*p.Payment)
		patch.Payment = &m
	}
	if p.DeliveryDate != nil {
		d := p.DeliveryDate.Time
		patch.DeliveryDate = &d
	}
	return patch
}

func (p OrderSearchParams) toFilter(memberIDs []kernel.UUID) (order.Filter, error) {
	filter := order.Filter{MemberIDs: memberIDs}
	if filter.MemberIDs == nil {
		ids, err := toKernelUUIDs(p.MemberIds)
		if err != nil {
			return order.Filter{}, err
		}
		filter.MemberIDs = ids
	}

	regionIDs, err := toKernelUUIDs(p.RegionIds)
	if err != nil {
		return order.Filter{}, err
	}
	filter.RegionIDs = regionIDs

	if p.Status != nil {
		status := order.Status(*p.Status)
		filter.Status = &status
	}
	filter.Start = dateOrNil(p.StartDate)
	filter.End = dateOrNil(p.EndDate)
	if p.DateField != nil {
		filter.DateField = order.DateField(*p.DateField)
	}
	if p.SearchField != nil {
		filter.SearchField = order.SearchField(*p.SearchField)
	}
	if p.Keyword != nil {
		filter.Keyword = *p.Keyword
	}
	return filter, nil
}

func (p OrderSearchParams) toPageRequest() paging.PageRequest {
	return paging.NewPageRequest(intOr(p.Page, paging.DefaultPage), intOr(p.Size, paging.DefaultSize),
		stringOr(p.Sort, paging.DefaultSort), stringOr(p.Direction, string(paging.Desc)))
}

func dateOrNil(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func toMemberResponse(m *member.Member) Member {
	profile := m.Profile()
	resp := Member{
		Id:                m.ID().Bytes(),
		LoginId:           m.LoginID(),
		Name:              m.Name(),
		Mobile:            m.Mobile(),
		BusinessNumber:    profile.BusinessNumber,
		CorpName:          profile.CorpName,
		CeoName:           profile.CeoName,
		CompanyAddress:    profile.CompanyAddress,
		Status:            string(m.Status()),
		StatusDescription: m.Status().Description(),
		ApprovalStatus:    string(m.Approval()),
		RejectionReason:   m.RejectionReason(),
		ActivityRegions:   []ActivityRegion{},
		ProductPrices:     []ProductPrice{},
		CreatedAt:         m.Audit().CreatedAt(),
		UpdatedAt:         m.Audit().UpdatedAt(),
	}
	for _, r := range m.ActivityRegions() {
		resp.ActivityRegions = append(resp.ActivityRegions, ActivityRegion{Sido: r.Sido, Sigungu: r.Sigungu, Active: r.Active})
	}
	for _, p := range m.ProductPrices() {
		resp.ProductPrices = append(resp.ProductPrices, ProductPrice{
			Sido:         p.Sido,
			Sigungu:      p.Sigungu,
			CategoryName: p.CategoryName,
			Price:        p.Price.Int64(),
			Available:    p.Available,
		})
	}
	return resp
}

func toOrderDetail(o *order.Order) OrderDetail {
	d := o.Details()
	resp := OrderDetail{
		Id:                o.ID().Bytes(),
		OrderNumber:       o.Number().String(),
		MemberId:          o.MemberID().Bytes(),
		RegionId:          fromKernelUUIDPtr(o.RegionID()),
		ProductId:         fromKernelUUIDPtr(o.ProductID()),
		OrderType:         o.Type().String(),
		Status:            OrderStatus(o.Status()),
		StatusDescription: o.Status().Description(),
		ShopName:          d.ShopName,
		ShopPhone:         d.ShopPhone,
		ProductName:       d.ProductName,
		ProductDetail:     d.ProductDetail,
		Quantity:          d.Quantity,
		OriginPrice:       d.OriginPrice.Int64(),
		Price:             d.Price.Int64(),
		Payment:           d.Payment.Int64(),
		TotalAmount:       o.TotalAmount().Int64(),
		OrdererName:       d.OrdererName,
		OrdererPhone:      d.OrdererPhone,
		OrdererMobile:     d.OrdererMobile,
		ReceiverName:      d.ReceiverName,
		ReceiverPhone:     d.ReceiverPhone,
		ReceiverMobile:    d.ReceiverMobile,
		Consignee:         d.Consignee,
		DeliveryDate:      openapi_types.Date{Time: d.DeliveryDate},
		DeliveryTime:      o.DeliveryTimeString(),
		EventTime:         o.EventTimeString(),
		DeliveryType:      d.DeliveryType,
		DeliveryPlace:     d.DeliveryPlace,
		Card:              d.Card,
		Request:           d.Request,
		HideDeliveryPhoto: d.HideDeliveryPhoto,
		IsDelivery:        d.IsDelivery,
		OnSite:            d.OnSite,
		Sms:               string(d.SMS),
		Fax:               string(d.Fax),
		Options:           []OrderOption{},
		Messages:          []OrderMessage{},
		Senders:           []OrderSender{},
		CanBeCancelled:    o.CanBeCancelled(),
		CanBeModified:     o.CanBeModified(),
		Version:           o.Version(),
		CreatedAt:         o.Audit().CreatedAt(),
		UpdatedAt:         o.Audit().UpdatedAt(),
	}
	for _, opt := range o.Options() {
		id := opt.ID().Bytes()
		resp.Options = append(resp.Options, OrderOption{
			Id:          &id,
			Name:        opt.Name(),
			Checked:     opt.Checked(),
			Price:       opt.Price().Int64(),
			Description: opt.Description(),
		})
	}
	for _, m := range o.Messages() {
		id := m.ID().Bytes()
		resp.Messages = append(resp.Messages, OrderMessage{Id: &id, Text: m.Text(), Type: string(m.Type()), SortOrder: m.SortOrder()})
	}
	for _, s := range o.Senders() {
		id := s.ID().Bytes()
		resp.Senders = append(resp.Senders, OrderSender{
			Id:           &id,
			Name:         s.Name(),
			Relationship: s.Relationship(),
			Phone:        s.Phone(),
			SortOrder:    s.SortOrder(),
			IsMain:       s.IsMain(),
		})
	}
	if img := o.ProductImage(); img != nil {
		resp.ProductImage = &ProductImage{
			Path:         img.Path,
			OriginalName: img.OriginalName,
			ContentType:  img.ContentType,
			Size:         img.Size,
		}
	}
	return resp
}

func toListItem(item queries.OrderListItem) OrderListItem {
	return OrderListItem{
		Id:              item.ID.Bytes(),
		OrderNumber:     item.OrderNumber,
		OrderType:       item.OrderType,
		OrderDate:       item.OrderDate,
		OrderTime:       item.OrderTime,
		DeliveryDate:    item.DeliveryDate,
		DeliveryTime:    item.DeliveryTime,
		Sender:          item.Sender,
		Receiver:        item.Receiver,
		ShopName:        item.ShopName,
		ProductName:     item.ProductName,
		DeliveryAddress: item.DeliveryAddress,
		OriginPrice:     item.OriginPrice.Int64(),
		Payment:         item.Payment.Int64(),
		TotalAmount:     item.TotalAmount.Int64(),
		Sms:             item.SMS,
		Fax:             item.Fax,
		Status:          OrderStatus(item.Status),
		DeliveryStatus:  item.DeliveryStatus,
		Consignee:       item.Consignee,
		IsDelivery:      item.IsDelivery,
		OnSite:          item.OnSite,
		HasProductImage: item.HasProductImage,
	}
}

func toListItems(items []queries.OrderListItem) []OrderListItem {
	out := make([]OrderListItem, 0, len(items))
	for _, item := range items {
		out = append(out, toListItem(item))
	}
	return out
}

func toOrderPage(p paging.Page[queries.OrderListItem]) OrderPage {
	mapped := paging.Map(p, toListItem)
	return OrderPage{
		Content:       mapped.Items,
		Page:          mapped.Page,
		Size:          mapped.Size,
		TotalElements: mapped.TotalElements,
		TotalPages:    mapped.TotalPages(),
		First:         mapped.IsFirst(),
		Last:          mapped.IsLast(),
	}
}
