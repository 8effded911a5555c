package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"todoapi/internal/service"
)

type createTodoRequest struct {
	Title       string     `json:"title" binding:"required,min=1"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

type updateTodoRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
}

// parseListParams reads page/limit/completed from the query string. Malformed
// numbers fall back to defaults; an unrecognized completed value means no
// filter, matching the original API's lenient parsing.
func parseListParams(c *gin.Context) service.TodoListParams {
	p := service.TodoListParams{Page: 1}

	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "0")); err == nil {
		p.Limit = v
	}
	switch c.Query("completed") {
	case "true":
		v := true
		p.Completed = &v
	case "false":
		v := false
		p.Completed = &v
	}
	return p
}

// @Summary      List the caller's todos
// @Description  Newest first; filterable by completion, paginated.
// @Tags         todos
// @Produce      json
// @Param        page       query  int     false  "Page (>=1, default 1)"
// @Param        limit      query  int     false  "Page size (1-100, default 20)"
// @Param        completed  query  bool    false  "Filter by completion"
// @Success      200  {object}  map[string]interface{}  "items, total, page, limit"
// @Failure      401  {object}  map[string]interface{}
// @Router       /todos [get]
// @Security     BearerAuth
func (h *Handler) listTodos(c *gin.Context) {
	page, err := h.services.Todos.List(c.Request.Context(), callerID(c), parseListParams(c))
	if err != nil {
		h.respondServiceError(c, err, "todos_list_failed", "userId", callerID(c))
		return
	}
	respondData(c, http.StatusOK, page)
}

// @Summary      Create a todo
// @Description  The new todo is always owned by the caller.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body  createTodoRequest  true  "Todo fields"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /todos [post]
// @Security     BearerAuth
func (h *Handler) createTodo(c *gin.Context) {
	var req createTodoRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	todo, err := h.services.Todos.Create(c.Request.Context(), callerID(c), service.TodoCreateParams{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.respondServiceError(c, err, "todos_create_failed", "userId", callerID(c))
		return
	}
	respondData(c, http.StatusCreated, todo)
}

// @Summary      Get a todo
// @Tags         todos
// @Produce      json
// @Param        id  path  string  true  "Todo id"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /todos/{id} [get]
// @Security     BearerAuth
func (h *Handler) getTodo(c *gin.Context) {
	todo, err := h.services.Todos.Get(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "todos_get_failed", "todoId", c.Param("id"))
		return
	}
	respondData(c, http.StatusOK, todo)
}

// @Summary      Update a todo
// @Description  Only the owner may update; ownership is checked before any write.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Todo id"
// @Param        body  body  updateTodoRequest  true  "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /todos/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateTodo(c *gin.Context) {
	var req updateTodoRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	todo, err := h.services.Todos.Update(c.Request.Context(), callerID(c), c.Param("id"), service.TodoUpdateParams{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.respondServiceError(c, err, "todos_update_failed", "todoId", c.Param("id"))
		return
	}
	respondData(c, http.StatusOK, todo)
}

// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Param        id  path  string  true  "Todo id"
// @Success      200  {object}  map[string]interface{}  "deleted"
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /todos/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTodo(c *gin.Context) {
	if err := h.services.Todos.Delete(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		h.respondServiceError(c, err, "todos_delete_failed", "todoId", c.Param("id"))
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}
