package controllers

import (
	"errors"
	"strconv"

	"campuseats-be/pkg/resp"
	"campuseats-be/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fail maps domain errors onto the HTTP taxonomy. Anything unmapped is
// a 500 with a generic body; the detail goes to the log only.
func fail(c *gin.Context, log *zap.Logger, err error) {
	var closed *services.ShopClosedError
	if errors.As(err, &closed) {
		resp.ShopClosed(c, closed.MsgEn, closed.MsgMm)
		return
	}
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidSelection),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrScopeMismatch),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrBadTransition),
		errors.Is(err, services.ErrSelfRemoval),
		errors.Is(err, services.ErrInvalidPayload):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	default:
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		resp.ServerError(c)
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
