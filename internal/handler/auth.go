package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"floreria-be/internal/validation"
)

const sessionCookieMaxAge = 24 * 60 * 60

func (h *Handler) setSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", token, sessionCookieMaxAge, "/", "", false, true)
}

func (h *Handler) Register(c *gin.Context) {
	var req validation.RegisterRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	token, u, err := h.users.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSession(c, token)
	c.JSON(http.StatusCreated, gin.H{"user": toUserView(u), "token": token})
}

func (h *Handler) Login(c *gin.Context) {
	var req validation.LoginRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	token, u, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSession(c, token)
	c.JSON(http.StatusOK, gin.H{"user": toUserView(u), "token": token})
}

func (h *Handler) GoogleLogin(c *gin.Context) {
	var req validation.GoogleLoginRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	token, u, err := h.users.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSession(c, token)
	c.JSON(http.StatusOK, gin.H{"user": toUserView(u), "token": token})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (h *Handler) Me(c *gin.Context) {
	u, err := h.users.CurrentUser(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserView(u)})
}
