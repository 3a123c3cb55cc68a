package controllers

import (
	"errors"

	"dashboard/pkg/datatable"
	"dashboard/pkg/i18n"
	"dashboard/pkg/resp"
	"dashboard/services"
	"dashboard/utils"

	"github.com/gin-gonic/gin"
)

type CurrencyController struct {
	Service *services.CurrencyService
}

func NewCurrencyController(service *services.CurrencyService) *CurrencyController {
	return &CurrencyController{Service: service}
}

func (ctl *CurrencyController) authorize(c *gin.Context) bool {
	if !services.Can(utils.CurrentActor(c), services.ActionManageCurrencies, nil) {
		resp.Forbidden(c, i18n.T(locale(c), "forbidden"))
		return false
	}
	return true
}

// GET /dashboard/currencies/data
func (ctl *CurrencyController) Data(c *gin.Context) {
	if !ctl.authorize(c) {
		return
	}
	out, err := ctl.Service.List(datatable.Parse(c.Request.URL.Query()))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /dashboard/currencies
func (ctl *CurrencyController) Create(c *gin.Context) {
	if !ctl.authorize(c) {
		return
	}
	in, ok := ctl.bindValid(c)
	if !ok {
		return
	}
	if _, err := ctl.Service.Create(in); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Success(c, i18n.T(locale(c), "successfullyAdded"))
}

// GET /dashboard/currencies/:id
func (ctl *CurrencyController) Show(c *gin.Context) {
	if !ctl.authorize(c) {
		return
	}
	cur, err := ctl.Service.Get(paramID(c, "id"))
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, i18n.T(locale(c), "notFound"))
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cur)
}

// POST /dashboard/currencies/:id
func (ctl *CurrencyController) Update(c *gin.Context) {
	if !ctl.authorize(c) {
		return
	}
	in, ok := ctl.bindValid(c)
	if !ok {
		return
	}
	err := ctl.Service.Update(paramID(c, "id"), in)
	if errors.Is(err, services.ErrNotFound) {
		resp.NotFound(c, i18n.T(locale(c), "notFound"))
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Success(c, i18n.T(locale(c), "successfullyUpdated"))
}

// POST /dashboard/currencies/:id/delete (ajax only)
func (ctl *CurrencyController) Delete(c *gin.Context) {
	if !ctl.authorize(c) {
		return
	}
	if !isAjax(c) {
		resp.BadRequest(c, i18n.T(locale(c), "badRequest"))
		return
	}
	if err := ctl.Service.Delete(paramID(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Success(c, i18n.T(locale(c), "successfullyDeleted"))
}

// bindValid binds the payload and runs the title rules, answering 422 with
// translated per-field messages itself.
func (ctl *CurrencyController) bindValid(c *gin.Context) (*services.CurrencyIn, bool) {
	var in services.CurrencyIn
	if err := c.ShouldBind(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return nil, false
	}
	if fields := services.ValidateCurrency(&in); len(fields) > 0 {
		loc := locale(c)
		for f, key := range fields {
			fields[f] = i18n.T(loc, key)
		}
		resp.ValidationFailed(c, i18n.T(loc, "validationFailed"), fields)
		return nil, false
	}
	return &in, true
}
