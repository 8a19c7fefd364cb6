package controller

import (
	"academic_dashboard/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the response envelope. Anything
// unrecognised is logged and answered with a generic 500.
func respondError(ctx *gin.Context, err error) {
	var verr *util.ValidationError
	switch {
	case errors.As(err, &verr):
		util.BadRequest(ctx, verr.Error())
	case errors.Is(err, util.ErrInvalidRole),
		errors.Is(err, util.ErrInvalidStatus),
		errors.Is(err, util.ErrUnsupportedFile),
		errors.Is(err, util.ErrEmptyDataset):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrNotAuthenticated):
		util.Unauthorized(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrSubmissionNotFound),
		errors.Is(err, util.ErrStudentNotFound),
		errors.Is(err, util.ErrNoDataset):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrStatusFinal):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// bindJSON reports malformed bodies as 400 and returns false.
func bindJSON(ctx *gin.Context, v interface{}) bool {
	if err := ctx.ShouldBindJSON(v); err != nil {
		util.BadRequest(ctx, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
