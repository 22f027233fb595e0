package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/mealbase-dev/mealbase/internal/models"
	"github.com/mealbase-dev/mealbase/internal/store"
)

type InventoriesHandler struct {
	store *store.Store
}

func NewInventoriesHandler(st *store.Store) *InventoriesHandler {
	return &InventoriesHandler{store: st}
}

type InventoryRequest struct {
	UserID         uint            `json:"user_id" binding:"required"`
	IngredientID   uint            `json:"ingredient_id" binding:"required"`
	Quantity       string          `json:"quantity" binding:"required"`
	UnitID         uint            `json:"unit_id" binding:"required"`
	ExpirationDate *datatypes.Date `json:"expiration_date"`
}

func (r *InventoryRequest) model() *models.Inventory {
	return &models.Inventory{
		UserID:         r.UserID,
		IngredientID:   r.IngredientID,
		Quantity:       r.Quantity,
		UnitID:         r.UnitID,
		ExpirationDate: r.ExpirationDate,
	}
}

func (h *InventoriesHandler) List(ctx *gin.Context) {
	inventories, err := h.store.Inventories.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, inventories)
}

func (h *InventoriesHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "inventory_id")

	if !ok {
		return
	}

	inventory, err := h.store.Inventories.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, inventory)
}

func (h *InventoriesHandler) Create(ctx *gin.Context) {
	var body InventoryRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	inventory := body.model()

	if err := h.store.Inventories.Create(ctx.Request.Context(), inventory); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, inventory)
}

func (h *InventoriesHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "inventory_id")

	if !ok {
		return
	}

	var body InventoryRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	inventory, err := h.store.Inventories.Update(ctx.Request.Context(), id, body.model())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, inventory)
}

func (h *InventoriesHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "inventory_id")

	if !ok {
		return
	}

	if err := h.store.Inventories.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
