package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealbase-dev/mealbase/internal/models"
	"github.com/mealbase-dev/mealbase/internal/store"
)

type UsersHandler struct {
	store *store.Store
}

func NewUsersHandler(st *store.Store) *UsersHandler {
	return &UsersHandler{store: st}
}

type UserRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	ProfilePhoto string `json:"profile_photo"`
	AccountType  string `json:"account_type"`
	RoleID       uint   `json:"role_id" binding:"required"`
}

func (r *UserRequest) model() *models.User {
	return &models.User{
		Name:         r.Name,
		Email:        r.Email,
		Password:     r.Password,
		ProfilePhoto: r.ProfilePhoto,
		AccountType:  r.AccountType,
		RoleID:       r.RoleID,
	}
}

func (h *UsersHandler) List(ctx *gin.Context) {
	users, err := h.store.Users.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (h *UsersHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_id")

	if !ok {
		return
	}

	user, err := h.store.Users.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UsersHandler) Create(ctx *gin.Context) {
	var body UserRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user := body.model()

	if err := h.store.Users.Create(ctx.Request.Context(), user); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

func (h *UsersHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_id")

	if !ok {
		return
	}

	var body UserRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.store.Users.Update(ctx.Request.Context(), id, body.model())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UsersHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_id")

	if !ok {
		return
	}

	if err := h.store.Users.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *UsersHandler) ListGroups(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_id")

	if !ok {
		return
	}

	if _, err := h.store.Users.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	memberships, err := h.store.UserGroups.ListByUser(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, memberships)
}

func (h *UsersHandler) ListRecipes(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_id")

	if !ok {
		return
	}

	if _, err := h.store.Users.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	links, err := h.store.UserRecipes.ListByUser(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, links)
}

func (h *UsersHandler) ListInventories(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_id")

	if !ok {
		return
	}

	if _, err := h.store.Users.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	inventories, err := h.store.Inventories.ListByUser(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, inventories)
}

func (h *UsersHandler) ListPlans(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_id")

	if !ok {
		return
	}

	if _, err := h.store.Users.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	plans, err := h.store.Plans.ListByUser(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, plans)
}

func (h *UsersHandler) ListShoppingLists(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_id")

	if !ok {
		return
	}

	if _, err := h.store.Users.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	lists, err := h.store.ShoppingLists.ListByUser(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lists)
}

func (h *UsersHandler) ListNotifications(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_id")

	if !ok {
		return
	}

	if _, err := h.store.Users.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	notifications, err := h.store.Notifications.ListByUser(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}
