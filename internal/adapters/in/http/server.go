package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"flowerorder/internal/core/application/usecases/commands"
	"flowerorder/internal/core/application/usecases/queries"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/member"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/core/ports"
	"flowerorder/internal/pkg/errs"
	"flowerorder/internal/pkg/paging"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handler is the shape shared by the command and query handlers.
type Handler[Req, Resp any] interface {
	Handle(ctx context.Context, req Req) (Resp, error)
}

type DeleteOrderHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	SignUpMember       Handler[commands.SignUpMemberCommand, *member.Member]
	ApproveMember      Handler[commands.ApproveMemberCommand, *member.Member]
	RejectMember       Handler[commands.RejectMemberCommand, *member.Member]
	SaveRegionPrices   Handler[commands.SaveRegionPricesCommand, *member.Member]
	CreateOrder        Handler[commands.CreateOrderCommand, *order.Order]
	UpdateOrder        Handler[commands.UpdateOrderCommand, *order.Order]
	UpdateOrderStatus  Handler[commands.UpdateOrderStatusCommand, *order.Order]
	DeleteOrder        DeleteOrderHandler
	UploadProductImage Handler[commands.UploadProductImageCommand, *order.Order]
	DeleteProductImage Handler[commands.DeleteProductImageCommand, *order.Order]

	GetOrder           Handler[queries.GetOrderQuery, *order.Order]
	SearchOrders       Handler[queries.SearchOrdersQuery, paging.Page[queries.OrderListItem]]
	GetOrderSummary    Handler[queries.GetOrderSummaryQuery, queries.OrderSummary]
	GetOrderStatistics Handler[queries.GetOrderStatisticsQuery, queries.OrderStatistics]
	GetTodayOrders     Handler[queries.GetTodayOrdersQuery, []queries.OrderListItem]
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{handlers: handlers, logger: logger.With("component", "http_server")}
}

// SignUpMember handles POST /api/v1/members.
func (s *Server) SignUpMember(ctx echo.Context) error {
	var req SignUpRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSignUpMemberCommand(req.toRegistration())
	if err != nil {
		return s.fail(ctx, err)
	}
	m, err := s.handlers.SignUpMember.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toMemberResponse(m))
}

// ApproveMember handles POST /api/v1/members/{memberId}/approve.
func (s *Server) ApproveMember(ctx echo.Context, memberId openapi_types.UUID) error {
	id, err := toKernelUUID(memberId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewApproveMemberCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	m, err := s.handlers.ApproveMember.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toMemberResponse(m))
}

// RejectMember handles POST /api/v1/members/{memberId}/reject.
func (s *Server) RejectMember(ctx echo.Context, memberId openapi_types.UUID) error {
	var req RejectRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, err)
	}
	id, err := toKernelUUID(memberId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRejectMemberCommand(id, req.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}
	m, err := s.handlers.RejectMember.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toMemberResponse(m))
}

// SaveRegionPrices handles PUT /api/v1/members/{memberId}/region-prices.
func (s *Server) SaveRegionPrices(ctx echo.Context, memberId openapi_types.UUID) error {
	var req RegionPricesRequest
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, err)
	}
	id, err := toKernelUUID(memberId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewSaveRegionPricesCommand(id, req.toInputs())
	if err != nil {
		return s.fail(ctx, err)
	}
	m, err := s.handlers.SaveRegionPrices.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toMemberResponse(m))
}

// CreateOrder handles POST /api/v1/members/{memberId}/orders.
func (s *Server) CreateOrder(ctx echo.Context, memberId openapi_types.UUID) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, err)
	}
	return s.createOrder(ctx, memberId, req, nil)
}

// CreateOrderWithImage handles POST /api/v1/members/{memberId}/orders/with-image.
// The order travels as a JSON "order" form field next to an optional "image" file.
func (s *Server) CreateOrderWithImage(ctx echo.Context, memberId openapi_types.UUID) error {
	var req NewOrder
	if err := json.Unmarshal([]byte(ctx.FormValue("order")), &req); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("order", err))
	}

	upload, closeUpload, err := formUpload(ctx, "image")
	if err != nil {
		return s.fail(ctx, err)
	}
	defer closeUpload()

	return s.createOrder(ctx, memberId, req, upload)
}

func (s *Server) createOrder(ctx echo.Context, memberId openapi_types.UUID, req NewOrder, image *ports.Upload) error {
	id, err := toKernelUUID(memberId)
	if err != nil {
		return s.fail(ctx, err)
	}
	draft, err := req.toDraft()
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewCreateOrderCommand(id, draft, image)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toOrderDetail(o))
}

// SearchMemberOrders handles GET /api/v1/members/{memberId}/orders.
func (s *Server) SearchMemberOrders(ctx echo.Context, memberId openapi_types.UUID, params OrderSearchParams) error {
	id, err := toKernelUUID(memberId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.search(ctx, params, []kernel.UUID{id})
}

// SearchOrders handles GET /api/v1/admin/orders.
func (s *Server) SearchOrders(ctx echo.Context, params OrderSearchParams) error {
	return s.search(ctx, params, nil)
}

func (s *Server) search(ctx echo.Context, params OrderSearchParams, memberIDs []kernel.UUID) error {
	filter, err := params.toFilter(memberIDs)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewSearchOrdersQuery(filter, params.toPageRequest())
	if err != nil {
		return s.fail(ctx, err)
	}

	page, err := s.handlers.SearchOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderPage(page))
}

// GetOrderSummary handles GET /api/v1/members/{memberId}/orders/summary.
func (s *Server) GetOrderSummary(ctx echo.Context, memberId openapi_types.UUID) error {
	id, err := toKernelUUID(memberId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderSummaryQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	summary, err := s.handlers.GetOrderSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, OrderSummary{
		TotalCount:      summary.TotalCount,
		MonthCount:      summary.MonthCount,
		DeliveredCount:  summary.DeliveredCount,
		InProgressCount: summary.InProgressCount,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.getOrder(ctx, query)
}

// GetOrderByNumber handles GET /api/v1/orders/by-number/{orderNumber}.
func (s *Server) GetOrderByNumber(ctx echo.Context, orderNumber string) error {
	query, err := queries.NewGetOrderByNumberQuery(orderNumber)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.getOrder(ctx, query)
}

func (s *Server) getOrder(ctx echo.Context, query queries.GetOrderQuery) error {
	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderDetail(o))
}

// UpdateOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var req OrderPatch
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, err)
	}
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewUpdateOrderCommand(id, req.toPatch())
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderDetail(o))
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var req StatusUpdate
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, err)
	}
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewUpdateOrderStatusCommand(id, string(req.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderDetail(o))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID, params DeleteOrderParams) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteOrderCommand(id, params.XActor)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UploadProductImage handles POST /api/v1/orders/{orderId}/image.
func (s *Server) UploadProductImage(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	upload, closeUpload, err := formUpload(ctx, "image")
	if err != nil {
		return s.fail(ctx, err)
	}
	defer closeUpload()
	if upload == nil {
		return s.fail(ctx, errs.NewValueIsRequiredError("image"))
	}

	cmd, err := commands.NewUploadProductImageCommand(id, *upload)
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.handlers.UploadProductImage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderDetail(o))
}

// DeleteProductImage handles DELETE /api/v1/orders/{orderId}/image.
func (s *Server) DeleteProductImage(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteProductImageCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.DeleteProductImage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderDetail(o))
}

// GetTodayOrders handles GET /api/v1/admin/orders/today.
func (s *Server) GetTodayOrders(ctx echo.Context) error {
	return s.today(ctx, queries.TodayCreated)
}

// GetTodayDeliveries handles GET /api/v1/admin/orders/today-delivery.
func (s *Server) GetTodayDeliveries(ctx echo.Context) error {
	return s.today(ctx, queries.TodayDelivery)
}

func (s *Server) today(ctx echo.Context, kind queries.TodayOrdersKind) error {
	query, err := queries.NewGetTodayOrdersQuery(kind)
	if err != nil {
		return s.fail(ctx, err)
	}
	items, err := s.handlers.GetTodayOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toListItems(items))
}

// GetOrderStatistics handles GET /api/v1/admin/orders/statistics.
func (s *Server) GetOrderStatistics(ctx echo.Context) error {
	stats, err := s.handlers.GetOrderStatistics.Handle(ctx.Request().Context(), queries.NewGetOrderStatisticsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, stats.AsMap())
}

func (s *Server) fail(ctx echo.Context, err error) error {
	return writeError(ctx, s.logger, err)
}

// formUpload returns a nil upload when the field is absent.
func formUpload(ctx echo.Context, field string) (*ports.Upload, func(), error) {
	noop := func() {}

	header, err := ctx.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, errs.NewValueIsInvalidErrorWithCause(field, err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, errs.NewStorageError("open upload", header.Filename, err)
	}
	return &ports.Upload{
		Name:        header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	}, func() { _ = file.Close() }, nil
}
