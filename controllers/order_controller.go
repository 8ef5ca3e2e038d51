package controllers

import (
	"errors"
	"strconv"

	"github.com/Sanjanabonagiri16/Tabletrack/pkg/resp"
	"github.com/Sanjanabonagiri16/Tabletrack/services"
	"github.com/Sanjanabonagiri16/Tabletrack/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Svc.Create(uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder),
			errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrUnknownItem):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "table not found")
		case errors.Is(err, services.ErrTableBusy):
			resp.Conflict(c, "table already has an active order")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, out)
}

// GET /orders — admins see all orders, waiters only their own
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Svc.ListFor(utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	o, err := oc.Svc.Detail(uint(id), utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}

type UpdateOrderReq struct {
	OrderID uint   `json:"orderId" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// PUT /orders (admin) — advance an order along the lifecycle
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	o, err := oc.Svc.Advance(req.OrderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrIllegalTransition):
			resp.Conflict(c, "cannot change status")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"order": o})
}
