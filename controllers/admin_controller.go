package controllers

import (
	"github.com/Sanjanabonagiri16/Tabletrack/pkg/resp"
	"github.com/Sanjanabonagiri16/Tabletrack/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Stats *services.StatsService
}

func NewAdminController(stats *services.StatsService) *AdminController {
	return &AdminController{Stats: stats}
}

// GET /admin/stats
func (a *AdminController) Dashboard(c *gin.Context) {
	stats, err := a.Stats.Dashboard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}
