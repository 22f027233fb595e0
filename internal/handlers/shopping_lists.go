package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealbase-dev/mealbase/internal/models"
	"github.com/mealbase-dev/mealbase/internal/store"
)

type ShoppingListsHandler struct {
	store *store.Store
}

func NewShoppingListsHandler(st *store.Store) *ShoppingListsHandler {
	return &ShoppingListsHandler{store: st}
}

type ShoppingListRequest struct {
	UserID      uint `json:"user_id" binding:"required"`
	IsCompleted bool `json:"is_completed"`
}

type ShoppingListItemRequest struct {
	ListID       uint   `json:"list_id" binding:"required"`
	IngredientID uint   `json:"ingredient_id" binding:"required"`
	Quantity     string `json:"quantity" binding:"required"`
	UnitID       uint   `json:"unit_id" binding:"required"`
	Status       string `json:"status"`
}

func (h *ShoppingListsHandler) List(ctx *gin.Context) {
	lists, err := h.store.ShoppingLists.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lists)
}

func (h *ShoppingListsHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "list_id")

	if !ok {
		return
	}

	list, err := h.store.ShoppingLists.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

func (h *ShoppingListsHandler) Create(ctx *gin.Context) {
	var body ShoppingListRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	list := models.ShoppingList{
		UserID:      body.UserID,
		IsCompleted: body.IsCompleted,
	}

	if err := h.store.ShoppingLists.Create(ctx.Request.Context(), &list); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, list)
}

func (h *ShoppingListsHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "list_id")

	if !ok {
		return
	}

	var body ShoppingListRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	list, err := h.store.ShoppingLists.Update(ctx.Request.Context(), id, &models.ShoppingList{
		UserID:      body.UserID,
		IsCompleted: body.IsCompleted,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

func (h *ShoppingListsHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "list_id")

	if !ok {
		return
	}

	if err := h.store.ShoppingLists.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *ShoppingListsHandler) ListItems(ctx *gin.Context) {
	id, ok := idParam(ctx, "list_id")

	if !ok {
		return
	}

	if _, err := h.store.ShoppingLists.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	items, err := h.store.ShoppingListItems.ListByList(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (h *ShoppingListsHandler) ListAllItems(ctx *gin.Context) {
	items, err := h.store.ShoppingListItems.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (h *ShoppingListsHandler) GetItem(ctx *gin.Context) {
	id, ok := idParam(ctx, "item_id")

	if !ok {
		return
	}

	item, err := h.store.ShoppingListItems.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func (h *ShoppingListsHandler) CreateItem(ctx *gin.Context) {
	var body ShoppingListItemRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	item := models.ShoppingListItem{
		ListID:       body.ListID,
		IngredientID: body.IngredientID,
		Quantity:     body.Quantity,
		UnitID:       body.UnitID,
		Status:       body.Status,
	}

	if err := h.store.ShoppingListItems.Create(ctx.Request.Context(), &item); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

func (h *ShoppingListsHandler) UpdateItem(ctx *gin.Context) {
	id, ok := idParam(ctx, "item_id")

	if !ok {
		return
	}

	var body ShoppingListItemRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	item, err := h.store.ShoppingListItems.Update(ctx.Request.Context(), id, &models.ShoppingListItem{
		ListID:       body.ListID,
		IngredientID: body.IngredientID,
		Quantity:     body.Quantity,
		UnitID:       body.UnitID,
		Status:       body.Status,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func (h *ShoppingListsHandler) DeleteItem(ctx *gin.Context) {
	id, ok := idParam(ctx, "item_id")

	if !ok {
		return
	}

	if err := h.store.ShoppingListItems.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
