package controllers

import (
	"campuseats-be/pkg/resp"
	"campuseats-be/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminMenuController struct {
	Menu *services.MenuService
	Svc  *services.AdminMenuService
	Log  *zap.Logger
}

func NewAdminMenuController(menu *services.MenuService, svc *services.AdminMenuService, log *zap.Logger) *AdminMenuController {
	return &AdminMenuController{Menu: menu, Svc: svc, Log: log}
}

// GET /api/admin/menu
func (h *AdminMenuController) GetMenu(c *gin.Context) {
	cats, pools, err := h.Menu.AdminMenu()
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats, "pools": pools})
}

// POST /api/admin/menu/categories
func (h *AdminMenuController) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(c.Request.Context(), req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /api/admin/menu/categories/:categoryId
func (h *AdminMenuController) UpdateCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "categoryId")
	if !ok {
		return
	}
	var req services.UpdateCategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, cat)
}

// POST /api/admin/menu/categories/reorder
func (h *AdminMenuController) ReorderCategories(c *gin.Context) {
	var req struct {
		IDs []uint `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ReorderCategories(c.Request.Context(), req.IDs); err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"message": "reordered"})
}

// POST /api/admin/menu/items
func (h *AdminMenuController) CreateItem(c *gin.Context) {
	var req services.CreateItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.CreateItem(c.Request.Context(), req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /api/admin/menu/items/:itemId
func (h *AdminMenuController) UpdateItem(c *gin.Context) {
	id, ok := parseUintParam(c, "itemId")
	if !ok {
		return
	}
	var req services.UpdateItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/admin/menu/categories/:categoryId/items/reorder
func (h *AdminMenuController) ReorderItems(c *gin.Context) {
	id, ok := parseUintParam(c, "categoryId")
	if !ok {
		return
	}
	var req struct {
		IDs []uint `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ReorderItems(c.Request.Context(), id, req.IDs); err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"message": "reordered"})
}

// PATCH /api/admin/menu/items/:itemId/availability
func (h *AdminMenuController) ToggleAvailability(c *gin.Context) {
	id, ok := parseUintParam(c, "itemId")
	if !ok {
		return
	}
	var req struct {
		IsAvailable *bool `json:"isAvailable" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.ToggleItemAvailability(c.Request.Context(), id, *req.IsAvailable)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	// trimmed projection for the stock toggle UI
	resp.OK(c, gin.H{
		"id":          item.ID,
		"nameEn":      item.NameEn,
		"isAvailable": item.IsAvailable,
		"updatedAt":   item.UpdatedAt,
	})
}

// POST /api/admin/menu/pools
func (h *AdminMenuController) CreatePool(c *gin.Context) {
	var req services.CreatePoolIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	pool, err := h.Svc.CreatePool(c.Request.Context(), req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.Created(c, pool)
}

// POST /api/admin/menu/pools/reorder
func (h *AdminMenuController) ReorderPools(c *gin.Context) {
	var req struct {
		IDs []uint `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ReorderPools(c.Request.Context(), req.IDs); err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"message": "reordered"})
}

// POST /api/admin/menu/pools/:poolId/duplicate
func (h *AdminMenuController) DuplicatePool(c *gin.Context) {
	id, ok := parseUintParam(c, "poolId")
	if !ok {
		return
	}
	var req services.DuplicatePoolIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	pool, err := h.Svc.DuplicatePool(c.Request.Context(), id, req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.Created(c, pool)
}

// POST /api/admin/menu/pools/:poolId/options
func (h *AdminMenuController) CreateOption(c *gin.Context) {
	id, ok := parseUintParam(c, "poolId")
	if !ok {
		return
	}
	var req services.CreateOptionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	opt, err := h.Svc.CreateOption(c.Request.Context(), id, req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.Created(c, opt)
}

// POST /api/admin/menu/pools/:poolId/options/reorder
func (h *AdminMenuController) ReorderOptions(c *gin.Context) {
	id, ok := parseUintParam(c, "poolId")
	if !ok {
		return
	}
	var req struct {
		IDs []uint `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ReorderOptions(c.Request.Context(), id, req.IDs); err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"message": "reordered"})
}

// DELETE /api/admin/menu/options/:optionId
func (h *AdminMenuController) DeleteOption(c *gin.Context) {
	id, ok := parseUintParam(c, "optionId")
	if !ok {
		return
	}
	if err := h.Svc.DeleteOption(c.Request.Context(), id); err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"message": "deleted"})
}

// POST /api/admin/menu/items/:itemId/pools
func (h *AdminMenuController) LinkPool(c *gin.Context) {
	id, ok := parseUintParam(c, "itemId")
	if !ok {
		return
	}
	var req struct {
		PoolID       uint `json:"poolId" binding:"required"`
		DisplayOrder int  `json:"displayOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	link, err := h.Svc.LinkPool(c.Request.Context(), id, req.PoolID, req.DisplayOrder)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.Created(c, link)
}

// DELETE /api/admin/menu/items/:itemId/pools/:poolId
func (h *AdminMenuController) UnlinkPool(c *gin.Context) {
	itemID, ok := parseUintParam(c, "itemId")
	if !ok {
		return
	}
	poolID, ok := parseUintParam(c, "poolId")
	if !ok {
		return
	}
	if err := h.Svc.UnlinkPool(c.Request.Context(), itemID, poolID); err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"message": "unlinked"})
}
