package controller

import (
	"academic_dashboard/internal/service"
	"academic_dashboard/internal/util"

	"github.com/gin-gonic/gin"
)

type PerformanceController struct {
	PerformanceService *service.PerformanceService
}

func NewPerformanceController(performanceService *service.PerformanceService) *PerformanceController {
	return &PerformanceController{PerformanceService: performanceService}
}

// @Summary 查看成绩分析
// @Description 按学号和学期核对数据集，随后生成学习资源、学习计划和总结。单项生成失败只会出现在 notices 中
// @Tags 成绩分析
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.VerifyRequest true "学号与学期"
// @Success 200 {object} util.Response{data=service.PerformanceReport}
// @Failure 404 {object} util.Response
// @Router /api/performance/verify [post]
func (c *PerformanceController) Verify(ctx *gin.Context) {
	var req service.VerifyRequest
	if !bindJSON(ctx, &req) {
		return
	}
	rec, err := c.PerformanceService.Verify(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, c.PerformanceService.Generate(ctx.Request.Context(), *rec))
}
