package controller

import (
	"academic_dashboard/internal/service"
	"academic_dashboard/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InsightController is the AI proxy. It answers {content} or {error}
// rather than the usual envelope, since browser clients call it directly.
type InsightController struct {
	InsightService *service.InsightService
}

func NewInsightController(insightService *service.InsightService) *InsightController {
	return &InsightController{InsightService: insightService}
}

// @Summary 生成成绩洞察
// @Description type 为 resources、studyPlan 或 summary。上游限流返回 429，额度不足返回 402，其余错误返回 500
// @Tags AI
// @Accept json
// @Produce json
// @Param body body service.InsightRequest true "科目与类型"
// @Success 200 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/insights [post]
func (c *InsightController) Generate(ctx *gin.Context) {
	var req service.InsightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	content, err := c.InsightService.GenerateRaw(ctx.Request.Context(), req.Type, req.Subjects)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, gin.H{"content": content})
	case errors.Is(err, util.ErrRateLimited):
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, util.ErrQuotaExceeded):
		ctx.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
