package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists one method per operation of api/openapi.yaml.
type ServerInterface interface {
	// (POST /api/v1/members)
	SignUpMember(ctx echo.Context) error
	// (POST /api/v1/members/{memberId}/approve)
	ApproveMember(ctx echo.Context, memberId openapi_types.UUID) error
	// (POST /api/v1/members/{memberId}/reject)
	RejectMember(ctx echo.Context, memberId openapi_types.UUID) error
	// (PUT /api/v1/members/{memberId}/region-prices)
	SaveRegionPrices(ctx echo.Context, memberId openapi_types.UUID) error
	// (POST /api/v1/members/{memberId}/orders)
	CreateOrder(ctx echo.Context, memberId openapi_types.UUID) error
	// (GET /api/v1/members/{memberId}/orders)
	SearchMemberOrders(ctx echo.Context, memberId openapi_types.UUID, params OrderSearchParams) error
	// (POST /api/v1/members/{memberId}/orders/with-image)
	CreateOrderWithImage(ctx echo.Context, memberId openapi_types.UUID) error
	// (GET /api/v1/members/{memberId}/orders/summary)
	GetOrderSummary(ctx echo.Context, memberId openapi_types.UUID) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (PATCH /api/v1/orders/{orderId})
	UpdateOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (DELETE /api/v1/orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId openapi_types.UUID, params DeleteOrderParams) error
	// (GET /api/v1/orders/by-number/{orderNumber})
	GetOrderByNumber(ctx echo.Context, orderNumber string) error
	// (PUT /api/v1/orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/image)
	UploadProductImage(ctx echo.Context, orderId openapi_types.UUID) error
	// (DELETE /api/v1/orders/{orderId}/image)
	DeleteProductImage(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/v1/admin/orders)
	SearchOrders(ctx echo.Context, params OrderSearchParams) error
	// (GET /api/v1/admin/orders/today)
	GetTodayOrders(ctx echo.Context) error
	// (GET /api/v1/admin/orders/today-delivery)
	GetTodayDeliveries(ctx echo.Context) error
	// (GET /api/v1/admin/orders/statistics)
	GetOrderStatistics(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) SignUpMember(ctx echo.Context) error {
	return w.Handler.SignUpMember(ctx)
}

func (w *ServerInterfaceWrapper) ApproveMember(ctx echo.Context) error {
	memberId, err := bindUUIDPath(ctx, "memberId")
	if err != nil {
		return err
	}
	return w.Handler.ApproveMember(ctx, memberId)
}

func (w *ServerInterfaceWrapper) RejectMember(ctx echo.Context) error {
	memberId, err := bindUUIDPath(ctx, "memberId")
	if err != nil {
		return err
	}
	return w.Handler.RejectMember(ctx, memberId)
}

func (w *ServerInterfaceWrapper) SaveRegionPrices(ctx echo.Context) error {
	memberId, err := bindUUIDPath(ctx, "memberId")
	if err != nil {
		return err
	}
	return w.Handler.SaveRegionPrices(ctx, memberId)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	memberId, err := bindUUIDPath(ctx, "memberId")
	if err != nil {
		return err
	}
	return w.Handler.CreateOrder(ctx, memberId)
}

func (w *ServerInterfaceWrapper) SearchMemberOrders(ctx echo.Context) error {
	memberId, err := bindUUIDPath(ctx, "memberId")
	if err != nil {
		return err
	}
	params, err := bindSearchParams(ctx, false)
	if err != nil {
		return err
	}
	return w.Handler.SearchMemberOrders(ctx, memberId, params)
}

func (w *ServerInterfaceWrapper) CreateOrderWithImage(ctx echo.Context) error {
	memberId, err := bindUUIDPath(ctx, "memberId")
	if err != nil {
		return err
	}
	return w.Handler.CreateOrderWithImage(ctx, memberId)
}

func (w *ServerInterfaceWrapper) GetOrderSummary(ctx echo.Context) error {
	memberId, err := bindUUIDPath(ctx, "memberId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrderSummary(ctx, memberId)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPath(ctx, "orderId")
	if err != nil {
		return err
	}

	var params DeleteOrderParams
	valueList, found := ctx.Request().Header[http.CanonicalHeaderKey("X-Actor")]
	if !found {
		return echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-Actor is required, but not found")
	}
	if n := len(valueList); n != 1 {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Actor, got %d", n))
	}
	err = runtime.BindStyledParameterWithOptions("simple", "X-Actor", valueList[0], &params.XActor,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Actor: %s", err))
	}

	return w.Handler.DeleteOrder(ctx, orderId, params)
}

func (w *ServerInterfaceWrapper) GetOrderByNumber(ctx echo.Context) error {
	var orderNumber string
	err := runtime.BindStyledParameterWithOptions("simple", "orderNumber", ctx.Param("orderNumber"), &orderNumber,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderNumber: %s", err))
	}
	return w.Handler.GetOrderByNumber(ctx, orderNumber)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderId, err := bindUUIDPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, orderId)
}

func (w *ServerInterfaceWrapper) UploadProductImage(ctx echo.Context) error {
	orderId, err := bindUUIDPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UploadProductImage(ctx, orderId)
}

func (w *ServerInterfaceWrapper) DeleteProductImage(ctx echo.Context) error {
	orderId, err := bindUUIDPath(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteProductImage(ctx, orderId)
}

func (w *ServerInterfaceWrapper) SearchOrders(ctx echo.Context) error {
	params, err := bindSearchParams(ctx, true)
	if err != nil {
		return err
	}
	return w.Handler.SearchOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetTodayOrders(ctx echo.Context) error {
	return w.Handler.GetTodayOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetTodayDeliveries(ctx echo.Context) error {
	return w.Handler.GetTodayDeliveries(ctx)
}

func (w *ServerInterfaceWrapper) GetOrderStatistics(ctx echo.Context) error {
	return w.Handler.GetOrderStatistics(ctx)
}

func bindUUIDPath(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindSearchParams(ctx echo.Context, withMembers bool) (OrderSearchParams, error) {
	var params OrderSearchParams
	query := ctx.QueryParams()

	dests := map[string]any{
		"status":      &params.Status,
		"startDate":   &params.StartDate,
		"endDate":     &params.EndDate,
		"dateField":   &params.DateField,
		"regionIds":   &params.RegionIds,
		"searchField": &params.SearchField,
		"keyword":     &params.Keyword,
		"page":        &params.Page,
		"size":        &params.Size,
		"sort":        &params.Sort,
		"direction":   &params.Direction,
	}
	if withMembers {
		dests["memberIds"] = &params.MemberIds
	}

	for name, dest := range dests {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dest); err != nil {
			return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
		}
	}
	return params, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/v1/members", w.SignUpMember)
	router.POST(baseURL+"/api/v1/members/:memberId/approve", w.ApproveMember)
	router.POST(baseURL+"/api/v1/members/:memberId/reject", w.RejectMember)
	router.PUT(baseURL+"/api/v1/members/:memberId/region-prices", w.SaveRegionPrices)
	router.POST(baseURL+"/api/v1/members/:memberId/orders", w.CreateOrder)
	router.GET(baseURL+"/api/v1/members/:memberId/orders", w.SearchMemberOrders)
	router.POST(baseURL+"/api/v1/members/:memberId/orders/with-image", w.CreateOrderWithImage)
	router.GET(baseURL+"/api/v1/members/:memberId/orders/summary", w.GetOrderSummary)
	router.GET(baseURL+"/api/v1/orders/by-number/:orderNumber", w.GetOrderByNumber)
	router.GET(baseURL+"/api/v1/orders/:orderId", w.GetOrder)
	router.PATCH(baseURL+"/api/v1/orders/:orderId", w.UpdateOrder)
	router.DELETE(baseURL+"/api/v1/orders/:orderId", w.DeleteOrder)
	router.PUT(baseURL+"/api/v1/orders/:orderId/status", w.UpdateOrderStatus)
	router.POST(baseURL+"/api/v1/orders/:orderId/image", w.UploadProductImage)
	router.DELETE(baseURL+"/api/v1/orders/:orderId/image", w.DeleteProductImage)
	router.GET(baseURL+"/api/v1/admin/orders", w.SearchOrders)
	router.GET(baseURL+"/api/v1/admin/orders/today", w.GetTodayOrders)
	router.GET(baseURL+"/api/v1/admin/orders/today-delivery", w.GetTodayDeliveries)
	router.GET(baseURL+"/api/v1/admin/orders/statistics", w.GetOrderStatistics)
}
