package users

import (
	"errors"
	"net/http"
	"strconv"

	"postboard/internal/domain"
	"postboard/internal/pkg/crud"
	"postboard/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler serves user records. The password hash never serializes (json:"-"
// on the domain type), and this surface cannot change credentials.
type Handler struct {
	users *crud.Service[domain.User]
}

type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewHandler(users *crud.Service[domain.User]) *Handler {
	return &Handler{users: users}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/user")
	{
		g.GET("", h.List)
		g.GET("/:id", h.GetByID)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.users.List(c.Request.Context(), nil)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "failed to list users")
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		writeCrudError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	updated, err := h.users.Update(c.Request.Context(), id, &domain.User{Name: req.Name, Email: req.Email})
	if err != nil {
		writeCrudError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		writeCrudError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "user deleted")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid id")
		return 0, false
	}
	return id, true
}

func writeCrudError(c *gin.Context, err error) {
	if errors.Is(err, crud.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "user not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "storage failure")
}
