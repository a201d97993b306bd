package controllers

import (
	"campuseats-be/pkg/resp"
	"campuseats-be/services"
	"campuseats-be/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShopController struct {
	Svc *services.ShopService
	Log *zap.Logger
}

func NewShopController(svc *services.ShopService, log *zap.Logger) *ShopController {
	return &ShopController{Svc: svc, Log: log}
}

// GET /api/shop-status (public) and GET /api/admin/settings/shop
func (h *ShopController) Get(c *gin.Context) {
	setting, err := h.Svc.Get(c.Request.Context())
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, setting)
}

// POST /api/admin/settings/shop
func (h *ShopController) Set(c *gin.Context) {
	var req services.SetShopStatusIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	setting, err := h.Svc.Set(c.Request.Context(), utils.CurrentAdminID(c), req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, setting)
}
