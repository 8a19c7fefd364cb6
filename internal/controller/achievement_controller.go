package controller

import (
	"academic_dashboard/internal/service"
	"academic_dashboard/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// @Summary 提交成就
// @Description 校际或校外成就，校外成就必须填写 universityName
// @Tags 成就
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.AchievementRequest true "成就"
// @Success 201 {object} util.Response{data=model.Achievement}
// @Failure 400 {object} util.Response
// @Router /api/achievements [post]
func (c *AchievementController) Submit(ctx *gin.Context) {
	var req service.AchievementRequest
	if !bindJSON(ctx, &req) {
		return
	}
	id := util.MustGetIdentity(ctx)
	a, err := c.AchievementService.Submit(ctx.Request.Context(), id.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, a)
}

// @Summary 我的成就
// @Tags 成就
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Achievement}
// @Router /api/achievements/my [get]
func (c *AchievementController) ListMine(ctx *gin.Context) {
	id := util.MustGetIdentity(ctx)
	items, err := c.AchievementService.ListByStudent(ctx.Request.Context(), id.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// @Summary 全部成就
// @Tags 成就
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Achievement}
// @Router /api/teacher/achievements [get]
func (c *AchievementController) ListAll(ctx *gin.Context) {
	items, err := c.AchievementService.ListAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}
