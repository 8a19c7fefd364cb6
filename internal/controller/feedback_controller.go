package controller

import (
	"academic_dashboard/internal/service"
	"academic_dashboard/internal/util"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	FeedbackService *service.FeedbackService
}

func NewFeedbackController(feedbackService *service.FeedbackService) *FeedbackController {
	return &FeedbackController{FeedbackService: feedbackService}
}

// @Summary 提交反馈
// @Tags 反馈
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.FeedbackRequest true "反馈"
// @Success 201 {object} util.Response{data=model.Feedback}
// @Failure 400 {object} util.Response
// @Router /api/feedback [post]
func (c *FeedbackController) Submit(ctx *gin.Context) {
	var req service.FeedbackRequest
	if !bindJSON(ctx, &req) {
		return
	}
	id := util.MustGetIdentity(ctx)
	f, err := c.FeedbackService.Submit(ctx.Request.Context(), id.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, f)
}

// @Summary 我的反馈
// @Tags 反馈
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Feedback}
// @Router /api/feedback/my [get]
func (c *FeedbackController) ListMine(ctx *gin.Context) {
	id := util.MustGetIdentity(ctx)
	items, err := c.FeedbackService.ListByStudent(ctx.Request.Context(), id.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// @Summary 全部反馈
// @Tags 反馈
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Feedback}
// @Router /api/teacher/feedback [get]
func (c *FeedbackController) ListAll(ctx *gin.Context) {
	items, err := c.FeedbackService.ListAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}
