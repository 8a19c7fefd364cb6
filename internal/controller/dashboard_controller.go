package controller

import (
	"academic_dashboard/internal/service"
	"academic_dashboard/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	ActivityService  *service.ActivityService
}

func NewDashboardController(dashboardService *service.DashboardService, activityService *service.ActivityService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		ActivityService:  activityService,
	}
}

// @Summary 学生首页
// @Tags 首页
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.StudentDashboard}
// @Router /api/dashboard [get]
func (c *DashboardController) GetStudentDashboard(ctx *gin.Context) {
	d, err := c.DashboardService.GetStudentDashboard(ctx.Request.Context(), util.MustGetIdentity(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, d)
}

// @Summary 教师首页
// @Description 学生数、数据集、待审核数量与最近操作
// @Tags 首页
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.TeacherDashboard}
// @Router /api/teacher/dashboard [get]
func (c *DashboardController) GetTeacherDashboard(ctx *gin.Context) {
	d, err := c.DashboardService.GetTeacherDashboard(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, d)
}

// @Summary 教师操作记录
// @Tags 首页
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "返回数量，0 表示全部" default(0)
// @Success 200 {object} util.Response{data=[]model.Activity}
// @Router /api/teacher/activities [get]
func (c *DashboardController) GetActivities(ctx *gin.Context) {
	limit := util.ParseIntDefault(ctx.Query("limit"), 0)
	items, err := c.ActivityService.Recent(ctx.Request.Context(), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}
