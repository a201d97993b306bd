package controllers

import (
	"net/http"

	"campuseats-be/pkg/resp"
	"campuseats-be/services"
	"campuseats-be/utils"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

type OrderController struct {
	Svc       *services.OrderService
	Log       *zap.Logger
	QRPayload string
}

func NewOrderController(svc *services.OrderService, log *zap.Logger, qrPayload string) *OrderController {
	return &OrderController{Svc: svc, Log: log, QRPayload: qrPayload}
}

// POST /api/checkout
func (h *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Checkout(c.Request.Context(), utils.CurrentUserID(c), req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:orderId
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := parseUintParam(c, "orderId")
	if !ok {
		return
	}
	order, err := h.Svc.Detail(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/orders/:orderId/payment
func (h *OrderController) SubmitPayment(c *gin.Context) {
	id, ok := parseUintParam(c, "orderId")
	if !ok {
		return
	}
	var req services.SubmitPaymentIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payment, err := h.Svc.SubmitPayment(utils.CurrentUserID(c), id, req)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.Created(c, payment)
}

// GET /api/payment-qr.png — renders the configured payment payload.
func (h *OrderController) PaymentQR(c *gin.Context) {
	if h.QRPayload == "" {
		resp.NotFound(c, "payment QR not configured")
		return
	}
	png, err := qrcode.Encode(h.QRPayload, qrcode.Medium, 512)
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", png)
}
