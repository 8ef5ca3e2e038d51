package controllers

import (
	"errors"

	"github.com/Sanjanabonagiri16/Tabletrack/pkg/resp"
	"github.com/Sanjanabonagiri16/Tabletrack/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /menu-items
func (m *MenuController) List(c *gin.Context) {
	items, err := m.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /menu-items (admin)
func (m *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := m.Svc.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}
