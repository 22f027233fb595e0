package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealbase-dev/mealbase/internal/models"
	"github.com/mealbase-dev/mealbase/internal/store"
)

type RolesHandler struct {
	store *store.Store
}

func NewRolesHandler(st *store.Store) *RolesHandler {
	return &RolesHandler{store: st}
}

type RoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *RolesHandler) List(ctx *gin.Context) {
	roles, err := h.store.Roles.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, roles)
}

func (h *RolesHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "role_id")

	if !ok {
		return
	}

	role, err := h.store.Roles.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, role)
}

func (h *RolesHandler) Create(ctx *gin.Context) {
	var body RoleRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	role := models.Role{
		Name:        body.Name,
		Description: body.Description,
	}

	if err := h.store.Roles.Create(ctx.Request.Context(), &role); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, role)
}

func (h *RolesHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "role_id")

	if !ok {
		return
	}

	var body RoleRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	role, err := h.store.Roles.Update(ctx.Request.Context(), id, &models.Role{
		Name:        body.Name,
		Description: body.Description,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, role)
}

func (h *RolesHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "role_id")

	if !ok {
		return
	}

	if err := h.store.Roles.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *RolesHandler) ListUsers(ctx *gin.Context) {
	id, ok := idParam(ctx, "role_id")

	if !ok {
		return
	}

	if _, err := h.store.Roles.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	users, err := h.store.Users.ListByRole(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}
