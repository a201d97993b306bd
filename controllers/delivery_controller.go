package controllers

import (
	"campuseats-be/pkg/resp"
	"campuseats-be/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DeliveryController struct {
	Svc *services.DeliveryService
	Log *zap.Logger
}

func NewDeliveryController(svc *services.DeliveryService, log *zap.Logger) *DeliveryController {
	return &DeliveryController{Svc: svc, Log: log}
}

// GET /api/delivery-locations (public: active only)
func (h *DeliveryController) ListPublic(c *gin.Context) {
	locs, err := h.Svc.List(true)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, locs)
}

// GET /api/delivery-locations/:slug
func (h *DeliveryController) GetBySlug(c *gin.Context) {
	loc, err := h.Svc.GetBySlug(c.Param("slug"))
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, loc)
}

// GET /api/admin/delivery-locations (inactive included)
func (h *DeliveryController) ListAdmin(c *gin.Context) {
	locs, err := h.Svc.List(false)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, locs)
}

// POST /api/admin/delivery-locations
func (h *DeliveryController) Create(c *gin.Context) {
	var req services.CreateLocationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	loc, err := h.Svc.Create(req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.Created(c, loc)
}

// PATCH /api/admin/delivery-locations/:locationId
func (h *DeliveryController) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "locationId")
	if !ok {
		return
	}
	var req services.UpdateLocationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	loc, err := h.Svc.Update(id, req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, loc)
}

// DELETE /api/admin/delivery-locations/:locationId
func (h *DeliveryController) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "locationId")
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"message": "deleted"})
}
