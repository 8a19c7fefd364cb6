package controller

import (
	"academic_dashboard/internal/service"
	"academic_dashboard/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ClubEventController struct {
	EventService        *service.ClubEventService
	NotificationService *service.NotificationService
}

func NewClubEventController(eventService *service.ClubEventService, notificationService *service.NotificationService) *ClubEventController {
	return &ClubEventController{
		EventService:        eventService,
		NotificationService: notificationService,
	}
}

// @Summary 社团活动列表
// @Tags 社团活动
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ClubEvent}
// @Router /api/events [get]
func (c *ClubEventController) List(ctx *gin.Context) {
	items, err := c.EventService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// @Summary 标记活动已查看
// @Tags 社团活动
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/events/visit [post]
func (c *ClubEventController) Visit(ctx *gin.Context) {
	id := util.MustGetIdentity(ctx)
	if err := c.NotificationService.Visit(ctx.Request.Context(), id.UserID, service.SourceEvents); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 发布社团活动
// @Tags 社团活动
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ClubEventRequest true "活动"
// @Success 201 {object} util.Response{data=model.ClubEvent}
// @Failure 400 {object} util.Response
// @Router /api/teacher/events [post]
func (c *ClubEventController) Create(ctx *gin.Context) {
	var req service.ClubEventRequest
	if !bindJSON(ctx, &req) {
		return
	}
	e, err := c.EventService.Post(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, e)
}

// @Summary 删除社团活动
// @Tags 社团活动
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "活动ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/teacher/events/{id} [delete]
func (c *ClubEventController) Delete(ctx *gin.Context) {
	removed, err := c.EventService.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !removed {
		util.Error(ctx, http.StatusNotFound, "Event not found")
		return
	}
	util.Success(ctx, nil)
}
