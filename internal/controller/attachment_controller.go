package controller

import (
	"academic_dashboard/internal/service"
	"academic_dashboard/internal/util"

	"github.com/gin-gonic/gin"
)

const maxAttachmentSize = 20 << 20

type AttachmentController struct {
	StorageService *service.StorageService
}

func NewAttachmentController(storageService *service.StorageService) *AttachmentController {
	return &AttachmentController{StorageService: storageService}
}

// @Summary 上传附件
// @Description 成就证明、论文或实习证书。返回的 fileName/url 在提交记录时引用
// @Tags 附件
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "附件"
// @Success 201 {object} util.Response{data=service.Attachment}
// @Failure 400 {object} util.Response
// @Router /api/attachments [post]
func (c *AttachmentController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "File is required")
		return
	}
	if !hasExtension(file.Filename, util.AllowedAttachmentExtensions) {
		util.BadRequest(ctx, util.ErrUnsupportedAttachment.Error())
		return
	}
	if file.Size > maxAttachmentSize {
		util.BadRequest(ctx, "File is too large")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	att, err := c.StorageService.Save(ctx.Request.Context(), "attachments", file.Filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, att)
}
