package handlers

import (
	"net/http"

	"gabeesh-social/config"
	"gabeesh-social/helper"
	"gabeesh-social/middleware"
	"gabeesh-social/models"
	"gabeesh-social/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type AuthHandler struct {
	authService services.AuthService
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, userService services.UserService, httpHelper *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService, Helper: httpHelper}
}

// Index is the public landing page.
func (h *AuthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "GabeeshSocial",
		"description": "Private community for Gabeesh members only",
		"login":       "/login",
	})
}

// LoginForm exists as the redirect target for anonymous requests.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "POST username and password to /login"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendUnauthorizedError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	c.SetCookie(middleware.SessionCookie, response.Token, int(config.JWTExpiration.Seconds()), "/", "", false, true)
	h.Helper.SendSuccess(c, "Login success", response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

// Dashboard returns the session snapshot, not the live record.
func (h *AuthHandler) Dashboard(c *gin.Context) {
	h.Helper.SendSuccess(c, "Dashboard loaded", gin.H{
		"username":   c.GetString("username"),
		"role":       c.GetString("role"),
		"votePower":  c.GetInt("votePower"),
		"muted":      c.GetBool("muted"),
		"superAdmin": c.GetBool("superAdmin"),
	})
}

// CreateMember is the inline create on the dashboard, super-admins only.
func (h *AuthHandler) CreateMember(c *gin.Context) {
	if !c.GetBool("superAdmin") {
		c.String(http.StatusForbidden, "Forbidden")
		return
	}

	var req models.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	user, err := h.userService.CreateMember(req)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Member created successfully", user.Public())
}
