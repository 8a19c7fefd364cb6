package controller

import (
	"academic_dashboard/internal/util"
	"academic_dashboard/pkg/kvstore"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store  kvstore.Store
	Driver string
}

func NewHealthController(store kvstore.Store, driver string) *HealthController {
	return &HealthController{Store: store, Driver: driver}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	// 检查存储连接
	if err := kvstore.Ping(ctx.Request.Context(), c.Store); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Store unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"store": c.Driver,
		},
	})
}
