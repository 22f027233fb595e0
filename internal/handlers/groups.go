package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealbase-dev/mealbase/internal/models"
	"github.com/mealbase-dev/mealbase/internal/store"
)

type GroupsHandler struct {
	store *store.Store
}

func NewGroupsHandler(st *store.Store) *GroupsHandler {
	return &GroupsHandler{store: st}
}

type GroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UserGroupRequest struct {
	UserID  uint `json:"user_id" binding:"required"`
	GroupID uint `json:"group_id" binding:"required"`
}

func (h *GroupsHandler) List(ctx *gin.Context) {
	groups, err := h.store.Groups.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, groups)
}

func (h *GroupsHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "group_id")

	if !ok {
		return
	}

	group, err := h.store.Groups.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, group)
}

func (h *GroupsHandler) Create(ctx *gin.Context) {
	var body GroupRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	group := models.Group{
		Name:        body.Name,
		Description: body.Description,
	}

	if err := h.store.Groups.Create(ctx.Request.Context(), &group); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, group)
}

func (h *GroupsHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "group_id")

	if !ok {
		return
	}

	var body GroupRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	group, err := h.store.Groups.Update(ctx.Request.Context(), id, &models.Group{
		Name:        body.Name,
		Description: body.Description,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, group)
}

func (h *GroupsHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "group_id")

	if !ok {
		return
	}

	if err := h.store.Groups.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *GroupsHandler) ListMembers(ctx *gin.Context) {
	id, ok := idParam(ctx, "group_id")

	if !ok {
		return
	}

	if _, err := h.store.Groups.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	memberships, err := h.store.UserGroups.ListByGroup(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, memberships)
}

func (h *GroupsHandler) ListMemberships(ctx *gin.Context) {
	memberships, err := h.store.UserGroups.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, memberships)
}

func (h *GroupsHandler) GetMembership(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_group_id")

	if !ok {
		return
	}

	membership, err := h.store.UserGroups.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, membership)
}

func (h *GroupsHandler) CreateMembership(ctx *gin.Context) {
	var body UserGroupRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	membership := models.UserGroup{
		UserID:  body.UserID,
		GroupID: body.GroupID,
	}

	if err := h.store.UserGroups.Create(ctx.Request.Context(), &membership); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, membership)
}

func (h *GroupsHandler) UpdateMembership(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_group_id")

	if !ok {
		return
	}

	var body UserGroupRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	membership, err := h.store.UserGroups.Update(ctx.Request.Context(), id, &models.UserGroup{
		UserID:  body.UserID,
		GroupID: body.GroupID,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, membership)
}

func (h *GroupsHandler) DeleteMembership(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_group_id")

	if !ok {
		return
	}

	if err := h.store.UserGroups.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
