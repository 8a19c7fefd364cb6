package controller

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/service"
	"academic_dashboard/internal/util"
	"academic_dashboard/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// @Summary 新内容提醒
// @Description 每个来源（assignments、events）自上次查看以来的新条目数
// @Tags 提醒
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Badge}
// @Router /api/notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	id := util.MustGetIdentity(ctx)
	badges, err := c.NotificationService.Badges(ctx.Request.Context(), id.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, badges)
}

// @Summary 提醒推送
// @Description Server-Sent Events，每个轮询周期发送一次 badges 事件，客户端断开即停止
// @Tags 提醒
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Param token query string false "EventSource 无法设置请求头时使用"
// @Success 200 {array} model.Badge
// @Router /api/notifications/stream [get]
func (c *NotificationController) Stream(ctx *gin.Context) {
	id := util.MustGetIdentity(ctx)

	monitoring.NotificationStreams.Inc()
	defer monitoring.NotificationStreams.Dec()

	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")

	interval := c.NotificationService.PollInterval()
	_ = c.NotificationService.Watch(ctx.Request.Context(), id.UserID, interval, func(badges []model.Badge) error {
		ctx.SSEvent("badges", badges)
		ctx.Writer.Flush()
		return nil
	})
}
