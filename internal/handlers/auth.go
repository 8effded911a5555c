package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/service"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"omitempty,min=1"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a
// 400 envelope on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		respondError(c, http.StatusBadRequest, "invalid input")
		return false
	}
	return true
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "Credentials"
// @Success      201  {object}  map[string]interface{}  "userId"
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	id, err := h.services.Register(c.Request.Context(), service.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.respondServiceError(c, err, "auth_register_failed", "email", req.Email)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"userId": id})
}

// @Summary      Log in and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}  "accessToken, tokenType, expiresIn, user"
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	res, err := h.services.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_login_failed", "email", req.Email)
		}
		h.respondServiceError(c, err, "auth_login_error", "email", req.Email)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"accessToken": res.AccessToken,
		"tokenType":   res.TokenType,
		"expiresIn":   res.ExpiresIn,
		"user": gin.H{
			"id":    res.User.ID,
			"email": res.User.Email,
			"name":  res.User.Name,
		},
	})
}

// @Summary      Profile of the authenticated user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *Handler) me(c *gin.Context) {
	u, err := h.services.Profile(c.Request.Context(), callerID(c))
	if err != nil {
		h.respondServiceError(c, err, "auth_me_failed", "userId", callerID(c))
		return
	}
	respondData(c, http.StatusOK, u)
}
