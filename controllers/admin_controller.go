package controllers

import (
	"campuseats-be/pkg/resp"
	"campuseats-be/services"
	"campuseats-be/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminController covers the roster plus admin-side order and payment
// handling.
type AdminController struct {
	Svc    *services.AdminService
	Orders *services.OrderService
	Log    *zap.Logger
}

func NewAdminController(svc *services.AdminService, orders *services.OrderService, log *zap.Logger) *AdminController {
	return &AdminController{Svc: svc, Orders: orders, Log: log}
}

// GET /api/admin/list
func (h *AdminController) List(c *gin.Context) {
	admins, err := h.Svc.List()
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, admins)
}

// POST /api/admin/add
func (h *AdminController) Add(c *gin.Context) {
	var req services.AddAdminIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	admin, err := h.Svc.Add(req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.Created(c, admin)
}

// DELETE /api/admin/remove
func (h *AdminController) Remove(c *gin.Context) {
	var req struct {
		AdminID uint `json:"adminId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Remove(utils.CurrentAdminID(c), req.AdminID); err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"message": "removed"})
}

// GET /api/admin/orders?status=
func (h *AdminController) ListOrders(c *gin.Context) {
	orders, err := h.Orders.ListByStatus(c.Query("status"))
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /api/admin/orders/:orderId/status
func (h *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "orderId")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required,oneof=open confirmed delivering completed cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Orders.UpdateStatus(id, req.Status)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /api/admin/payments/:paymentId
func (h *AdminController) VerifyPayment(c *gin.Context) {
	id, ok := parseUintParam(c, "paymentId")
	if !ok {
		return
	}
	var req struct {
		Approve *bool `json:"approve" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payment, err := h.Orders.VerifyPayment(utils.CurrentAdminID(c), id, *req.Approve)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, payment)
}
