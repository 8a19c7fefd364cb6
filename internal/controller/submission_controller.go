package controller

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/service"
	"academic_dashboard/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
}

func NewSubmissionController(submissionService *service.SubmissionService) *SubmissionController {
	return &SubmissionController{SubmissionService: submissionService}
}

// @Summary 提交科研成果
// @Tags 科研与实习
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ResearchRequest true "科研成果"
// @Success 201 {object} util.Response{data=model.Submission}
// @Failure 400 {object} util.Response
// @Router /api/submissions/research [post]
func (c *SubmissionController) SubmitResearch(ctx *gin.Context) {
	var req service.ResearchRequest
	if !bindJSON(ctx, &req) {
		return
	}
	id := util.MustGetIdentity(ctx)
	sub, err := c.SubmissionService.SubmitResearch(ctx.Request.Context(), id.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, sub)
}

// @Summary 提交实习记录
// @Description 实习时长由起止日期自动计算
// @Tags 科研与实习
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.InternshipRequest true "实习记录"
// @Success 201 {object} util.Response{data=model.Submission}
// @Failure 400 {object} util.Response
// @Router /api/submissions/internship [post]
func (c *SubmissionController) SubmitInternship(ctx *gin.Context) {
	var req service.InternshipRequest
	if !bindJSON(ctx, &req) {
		return
	}
	id := util.MustGetIdentity(ctx)
	sub, err := c.SubmissionService.SubmitInternship(ctx.Request.Context(), id.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, sub)
}

// @Summary 我的提交
// @Tags 科研与实习
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Submission}
// @Router /api/submissions/my [get]
func (c *SubmissionController) ListMine(ctx *gin.Context) {
	id := util.MustGetIdentity(ctx)
	items, err := c.SubmissionService.ListByStudent(ctx.Request.Context(), id.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// @Summary 全部提交
// @Tags 科研与实习
// @Produce json
// @Security ApiKeyAuth
// @Param type query string false "research 或 internship"
// @Success 200 {object} util.Response{data=[]model.Submission}
// @Router /api/teacher/submissions [get]
func (c *SubmissionController) List(ctx *gin.Context) {
	items, err := c.SubmissionService.List(ctx.Request.Context(), model.SubmissionType(ctx.Query("type")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// @Summary 审核提交
// @Description 只能从 pending 变为 approved 或 rejected；重复相同决定不产生变化
// @Tags 科研与实习
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "提交ID"
// @Param body body service.ReviewRequest true "审核结果"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/teacher/submissions/{id}/status [patch]
func (c *SubmissionController) UpdateStatus(ctx *gin.Context) {
	var req service.ReviewRequest
	if !bindJSON(ctx, &req) {
		return
	}
	sub, err := c.SubmissionService.Review(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sub)
}
