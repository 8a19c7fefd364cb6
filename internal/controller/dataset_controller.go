package controller

import (
	"academic_dashboard/internal/service"
	"academic_dashboard/internal/util"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxDatasetSize = 10 << 20

type DatasetController struct {
	DatasetService *service.DatasetService
}

func NewDatasetController(datasetService *service.DatasetService) *DatasetController {
	return &DatasetController{DatasetService: datasetService}
}

// @Summary 上传成绩数据集
// @Description 支持 .csv 和 .xlsx，表头为 regNo, semester, subject, marks, total，可选 overallPercentage。上传会整体替换现有数据
// @Tags 成绩分析
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "数据集文件"
// @Success 201 {object} util.Response{data=service.ImportResult}
// @Failure 400 {object} util.Response
// @Router /api/teacher/dataset [post]
func (c *DatasetController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "File is required")
		return
	}
	if file.Size > maxDatasetSize {
		util.BadRequest(ctx, "File is too large")
		return
	}
	if !hasExtension(file.Filename, util.AllowedDatasetExtensions) {
		util.BadRequest(ctx, util.ErrUnsupportedFile.Error())
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	result, err := c.DatasetService.Import(ctx.Request.Context(), file.Filename, src)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// @Summary 数据集状态
// @Tags 成绩分析
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DatasetStatus}
// @Router /api/teacher/dataset [get]
func (c *DatasetController) Status(ctx *gin.Context) {
	status, err := c.DatasetService.Status(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, status)
}

func hasExtension(name string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
