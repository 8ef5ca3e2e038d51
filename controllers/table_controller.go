package controllers

import (
	"errors"

	"github.com/Sanjanabonagiri16/Tabletrack/pkg/resp"
	"github.com/Sanjanabonagiri16/Tabletrack/services"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	Svc *services.TableService
}

func NewTableController(svc *services.TableService) *TableController {
	return &TableController{Svc: svc}
}

// GET /tables
func (t *TableController) List(c *gin.Context) {
	tables, err := t.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"tables": tables})
}

type UpdateTableReq struct {
	TableID uint   `json:"tableId" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// PUT /tables (admin) — guarded status override
func (t *TableController) Update(c *gin.Context) {
	var req UpdateTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	table, err := t.Svc.Override(req.TableID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, "invalid table ID or status")
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "table not found")
		case errors.Is(err, services.ErrTableBusy):
			resp.Conflict(c, "table already has an active order")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"table": table})
}
