package controllers

import (
	"campuseats-be/pkg/resp"
	"campuseats-be/services"
	"campuseats-be/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	Svc *services.AuthService
	Log *zap.Logger
}

func NewAuthController(svc *services.AuthService, log *zap.Logger) *AuthController {
	return &AuthController{Svc: svc, Log: log}
}

// POST /api/sign-up
func (h *AuthController) SignUp(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone"`
		Room     string `json:"room"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := h.Svc.SignUp(req.Email, req.Password, req.Name, req.Phone, req.Room)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

// POST /api/sign-in
func (h *AuthController) SignIn(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.SignIn(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// POST /api/sign-out — sessions are stateless bearer tokens; the client
// drops the token, the server just acknowledges.
func (h *AuthController) SignOut(c *gin.Context) {
	resp.OK(c, gin.H{"message": "signed out"})
}

// GET /api/me
func (h *AuthController) Me(c *gin.Context) {
	user, err := h.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, user)
}

// POST /api/auth/forgot-password — always the same generic success,
// whether or not the account exists.
func (h *AuthController) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ForgotPassword(req.Email); err != nil {
		fail(c, h.Log, err)
		return
	}
	resp.OK(c, gin.H{"message": "if the account exists, a reset email has been sent"})
}

// POST /api/auth/reset-password
func (h *AuthController) ResetPassword(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ResetPassword(req.Token, req.Password); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "password updated"})
}
