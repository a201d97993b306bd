package controllers

import (
	"campuseats-be/pkg/resp"
	"campuseats-be/services"
	"campuseats-be/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartController struct {
	Svc *services.CartService
	Log *zap.Logger
}

func NewCartController(svc *services.CartService, log *zap.Logger) *CartController {
	return &CartController{Svc: svc, Log: log}
}

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	summary, err := h.Svc.Summarize(utils.CurrentUserID(c))
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"summary": summary})
}

// POST /api/cart
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(c.Request.Context(), uid, &req); err != nil {
		fail(c, h.Log, err)
		return
	}
	summary, err := h.Svc.Summarize(uid)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"summary": summary, "message": "added to cart"})
}

// POST /api/cart/bulk
func (h *CartController) BulkAdd(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.BulkAddIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.BulkAdd(c.Request.Context(), uid, &req); err != nil {
		fail(c, h.Log, err)
		return
	}
	summary, err := h.Svc.Summarize(uid)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"summary": summary, "message": "added to cart"})
}

// POST /api/cart/set-menu — a combo line; selections are mandatory here.
func (h *CartController) AddSetMenu(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if len(req.Selections) == 0 {
		resp.BadRequest(c, "selections are required for set menus")
		return
	}
	if err := h.Svc.Add(c.Request.Context(), uid, &req); err != nil {
		fail(c, h.Log, err)
		return
	}
	summary, err := h.Svc.Summarize(uid)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"summary": summary, "message": "set menu added"})
}

// PATCH /api/cart/items
func (h *CartController) UpdateQty(c *gin.Context) {
	var req struct {
		ItemID uint `json:"itemId" binding:"required"`
		Qty    int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(utils.CurrentUserID(c), req.ItemID, req.Qty); err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"message": "updated"})
}

// DELETE /api/cart/items/:itemId
func (h *CartController) RemoveLine(c *gin.Context) {
	id, ok := parseUintParam(c, "itemId")
	if !ok {
		return
	}
	if err := h.Svc.RemoveLine(utils.CurrentUserID(c), id); err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"message": "removed"})
}

// DELETE /api/cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"message": "cleared"})
}
