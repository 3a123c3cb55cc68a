package controllers

import (
	"errors"

	"dashboard/entity"
	"dashboard/pkg/datatable"
	"dashboard/pkg/i18n"
	"dashboard/pkg/resp"
	"dashboard/services"
	"dashboard/utils"

	"github.com/gin-gonic/gin"
)

type OrderItemController struct {
	Orders  *services.OrderService
	Service *services.OrderItemService
}

func NewOrderItemController(orders *services.OrderService, service *services.OrderItemService) *OrderItemController {
	return &OrderItemController{Orders: orders, Service: service}
}

func (ctl *OrderItemController) order(c *gin.Context, action services.Action) *entity.Order {
	order, err := ctl.Orders.Get(paramID(c, "id"))
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, i18n.T(locale(c), "notFound"))
		return nil
	}
	if err != nil {
		resp.ServerError(c, err)
		return nil
	}
	if !services.Can(utils.CurrentActor(c), action, order) {
		resp.Forbidden(c, i18n.T(locale(c), "forbidden"))
		return nil
	}
	return order
}

// POST /dashboard/orders/:id/items
func (ctl *OrderItemController) Add(c *gin.Context) {
	loc := locale(c)
	order := ctl.order(c, services.ActionUpdate)
	if order == nil {
		return
	}

	var in services.AddItemIn
	if err := c.ShouldBind(&in); err != nil {
		resp.ValidationFailed(c, i18n.T(loc, "validationFailed"), nil)
		return
	}

	switch _, err := ctl.Service.AddItem(order, &in); {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, i18n.T(loc, "itemNotFound"))
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, i18n.T(loc, "saveFailed"))
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.Success(c, i18n.T(loc, "successfullyAdded"))
	}
}

// GET /dashboard/orders/:id/items/data
func (ctl *OrderItemController) Data(c *gin.Context) {
	order := ctl.order(c, services.ActionAccess)
	if order == nil {
		return
	}
	out, err := ctl.Service.List(order, datatable.Parse(c.Request.URL.Query()), locale(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
