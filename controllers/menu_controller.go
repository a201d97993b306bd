package controllers

import (
	"strconv"

	"campuseats-be/pkg/resp"
	"campuseats-be/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MenuController struct {
	Svc *services.MenuService
	Log *zap.Logger
}

func NewMenuController(svc *services.MenuService, log *zap.Logger) *MenuController {
	return &MenuController{Svc: svc, Log: log}
}

// GET /api/menu
func (h *MenuController) GetMenu(c *gin.Context) {
	menu, err := h.Svc.PublicMenu(c.Request.Context())
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=300, s-maxage=3600, stale-while-revalidate=86400")
	resp.OK(c, gin.H{
		"menu":        menu,
		"recommended": h.Svc.Recommended(menu),
	})
}

// GET /api/menu/items/:itemId
func (h *MenuController) ItemDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	detail, err := h.Svc.ItemDetail(uint(id))
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"detail": detail})
}
