package controllers

import (
	"errors"
	"strconv"
	"time"

	"dashboard/entity"
	"dashboard/pkg/datatable"
	"dashboard/pkg/i18n"
	"dashboard/pkg/resp"
	"dashboard/repository"
	"dashboard/services"
	"dashboard/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service  *services.OrderService
	RestRepo *repository.RestaurantRepository
}

func NewOrderController(service *services.OrderService, restRepo *repository.RestaurantRepository) *OrderController {
	return &OrderController{Service: service, RestRepo: restRepo}
}

// restaurant loads the :id restaurant and checks board access.
func (ctl *OrderController) restaurant(c *gin.Context) *entity.Restaurant {
	rest, err := ctl.RestRepo.Get(paramID(c, "id"))
	if err != nil {
		resp.NotFound(c, i18n.T(locale(c), "notFound"))
		return nil
	}
	if !services.Can(utils.CurrentActor(c), services.ActionAccess, rest) {
		resp.Forbidden(c, i18n.T(locale(c), "forbidden"))
		return nil
	}
	return rest
}

// GET /dashboard/restaurants/:id/orders/data
func (ctl *OrderController) Data(c *gin.Context) {
	rest := ctl.restaurant(c)
	if rest == nil {
		return
	}
	out, err := ctl.Service.ListActive(rest, datatable.Parse(c.Request.URL.Query()), locale(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /dashboard/restaurants/:id/orders/closed-data
func (ctl *OrderController) ClosedData(c *gin.Context) {
	rest := ctl.restaurant(c)
	if rest == nil {
		return
	}
	out, err := ctl.Service.ListClosed(rest, datatable.Parse(c.Request.URL.Query()), locale(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /dashboard/orders/:id/invoice
func (ctl *OrderController) Invoice(c *gin.Context) {
	inv, order, err := ctl.Service.Invoice(paramID(c, "id"), locale(c))
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, i18n.T(locale(c), "notFound"))
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !services.Can(utils.CurrentActor(c), services.ActionAccess, order) {
		resp.Forbidden(c, i18n.T(locale(c), "forbidden"))
		return
	}
	resp.OK(c, inv)
}

// GET /dashboard/restaurants/:id/orders/latest-update?latestUpdate=unix
func (ctl *OrderController) LatestUpdate(c *gin.Context) {
	rest := ctl.restaurant(c)
	if rest == nil {
		return
	}
	ts, _ := strconv.ParseInt(c.Query("latestUpdate"), 10, 64)
	out, err := ctl.Service.LatestUpdate(rest.ID, time.Unix(ts, 0))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// ----- Status transitions (ajax only) -----

func (ctl *OrderController) Prepare(c *gin.Context) { ctl.transition(c, ctl.Service.Prepare) }
func (ctl *OrderController) Serve(c *gin.Context)   { ctl.transition(c, ctl.Service.Serve) }
func (ctl *OrderController) Pay(c *gin.Context)     { ctl.transition(c, ctl.Service.Pay) }
func (ctl *OrderController) Cancel(c *gin.Context)  { ctl.transition(c, ctl.Service.Cancel) }

func (ctl *OrderController) transition(c *gin.Context, apply func(*entity.Order) error) {
	loc := locale(c)
	if !isAjax(c) {
		resp.BadRequest(c, i18n.T(loc, "badRequest"))
		return
	}

	order, err := ctl.Service.Get(paramID(c, "id"))
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, i18n.T(loc, "notFound"))
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !services.Can(utils.CurrentActor(c), services.ActionUpdate, order) {
		resp.Forbidden(c, i18n.T(loc, "forbidden"))
		return
	}

	switch err := apply(order); {
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, i18n.T(loc, "invalidTransition"))
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.Success(c, i18n.T(loc, "successfullyUpdated"))
	}
}
