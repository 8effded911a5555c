package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/service"
)

type updateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /users [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err, "users_list_failed")
		return
	}
	respondData(c, http.StatusOK, users)
}

// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "User fields"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /users [post]
// @Security     BearerAuth
func (h *Handler) createUser(c *gin.Context) {
	var req registerRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	u, err := h.services.Users.Create(c.Request.Context(), service.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.respondServiceError(c, err, "users_create_failed", "email", req.Email)
		return
	}
	respondData(c, http.StatusCreated, u)
}

// @Summary      Get a user
// @Description  Callers may only read their own account.
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	u, err := h.services.Users.Get(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "users_get_failed", "targetId", c.Param("id"))
		return
	}
	respondData(c, http.StatusOK, u)
}

// @Summary      Update a user
// @Description  Callers may only update their own account.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "User id"
// @Param        body  body  updateUserRequest  true  "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /users/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	var req updateUserRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	u, err := h.services.Users.Update(c.Request.Context(), callerID(c), c.Param("id"), service.UserUpdateParams{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.respondServiceError(c, err, "users_update_failed", "targetId", c.Param("id"))
		return
	}
	respondData(c, http.StatusOK, u)
}

// @Summary      Delete a user
// @Description  Callers may only delete their own account; owned todos cascade.
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  map[string]interface{}  "deleted"
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.services.Users.Delete(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		h.respondServiceError(c, err, "users_delete_failed", "targetId", c.Param("id"))
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
