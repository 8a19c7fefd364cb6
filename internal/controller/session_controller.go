package controller

import (
	"academic_dashboard/internal/service"
	"academic_dashboard/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

// @Summary 登录
// @Description 以学生或教师身份开始会话，未提供 userId 时使用演示账号
// @Tags 会话
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "角色与用户ID"
// @Success 200 {object} util.Response{data=service.LoginResponse}
// @Failure 400 {object} util.Response
// @Router /api/session/login [post]
func (c *SessionController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.SessionService.Login(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}

// @Summary 退出登录
// @Tags 会话
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/session/logout [post]
func (c *SessionController) Logout(ctx *gin.Context) {
	claims := util.GetClaimsFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	if err := c.SessionService.Logout(ctx.Request.Context(), claims.SessionID); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 当前会话
// @Tags 会话
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Identity}
// @Router /api/session [get]
func (c *SessionController) Current(ctx *gin.Context) {
	util.Success(ctx, util.MustGetIdentity(ctx))
}
