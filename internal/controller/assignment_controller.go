package controller

import (
	"academic_dashboard/internal/service"
	"academic_dashboard/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService   *service.AssignmentService
	NotificationService *service.NotificationService
}

func NewAssignmentController(assignmentService *service.AssignmentService, notificationService *service.NotificationService) *AssignmentController {
	return &AssignmentController{
		AssignmentService:   assignmentService,
		NotificationService: notificationService,
	}
}

// @Summary 作业列表
// @Tags 作业
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/assignments [get]
func (c *AssignmentController) List(ctx *gin.Context) {
	items, err := c.AssignmentService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// @Summary 标记作业已查看
// @Description 清除当前学生的作业提醒
// @Tags 作业
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/assignments/visit [post]
func (c *AssignmentController) Visit(ctx *gin.Context) {
	id := util.MustGetIdentity(ctx)
	if err := c.NotificationService.Visit(ctx.Request.Context(), id.UserID, service.SourceAssignments); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 发布作业
// @Tags 作业
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.AssignmentRequest true "作业"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Failure 400 {object} util.Response
// @Router /api/teacher/assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	var req service.AssignmentRequest
	if !bindJSON(ctx, &req) {
		return
	}
	a, err := c.AssignmentService.Post(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, a)
}

// @Summary 删除作业
// @Tags 作业
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "作业ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/teacher/assignments/{id} [delete]
func (c *AssignmentController) Delete(ctx *gin.Context) {
	removed, err := c.AssignmentService.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !removed {
		util.Error(ctx, http.StatusNotFound, "Assignment not found")
		return
	}
	util.Success(ctx, nil)
}
