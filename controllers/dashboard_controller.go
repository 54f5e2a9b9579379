// File: /controllers/dashboard_controller.go
package controllers

import (
	"net/http"

	"automanager-api/services"
	"automanager-api/utils"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	statsService *services.StatsService
}

func NewDashboardController(statsService *services.StatsService) *DashboardController {
	return &DashboardController{statsService: statsService}
}

func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.statsService.Dashboard()
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetNetProfit reports all-time revenue minus all-time expenses.
func (dc *DashboardController) GetNetProfit(c *gin.Context) {
	netProfit, err := dc.statsService.NetProfit()
	if err != nil {
		utils.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"net_profit": netProfit})
}
