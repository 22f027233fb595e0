package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealbase-dev/mealbase/internal/models"
	"github.com/mealbase-dev/mealbase/internal/store"
)

type IngredientsHandler struct {
	store *store.Store
}

func NewIngredientsHandler(st *store.Store) *IngredientsHandler {
	return &IngredientsHandler{store: st}
}

type IngredientCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type IngredientRequest struct {
	Name       string `json:"name" binding:"required"`
	CategoryID uint   `json:"category_id" binding:"required"`
}

type UnitRequest struct {
	Name string `json:"name" binding:"required"`
}

type RecipeIngredientRequest struct {
	RecipeID     uint   `json:"recipe_id" binding:"required"`
	IngredientID uint   `json:"ingredient_id" binding:"required"`
	Quantity     string `json:"quantity" binding:"required"`
	UnitID       uint   `json:"unit_id" binding:"required"`
}

func (h *IngredientsHandler) ListCategories(ctx *gin.Context) {
	categories, err := h.store.IngredientCategories.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

func (h *IngredientsHandler) GetCategory(ctx *gin.Context) {
	id, ok := idParam(ctx, "ingredient_category_id")

	if !ok {
		return
	}

	category, err := h.store.IngredientCategories.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func (h *IngredientsHandler) CreateCategory(ctx *gin.Context) {
	var body IngredientCategoryRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	category := models.IngredientCategory{
		Name:        body.Name,
		Description: body.Description,
	}

	if err := h.store.IngredientCategories.Create(ctx.Request.Context(), &category); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func (h *IngredientsHandler) UpdateCategory(ctx *gin.Context) {
	id, ok := idParam(ctx, "ingredient_category_id")

	if !ok {
		return
	}

	var body IngredientCategoryRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	category, err := h.store.IngredientCategories.Update(ctx.Request.Context(), id, &models.IngredientCategory{
		Name:        body.Name,
		Description: body.Description,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func (h *IngredientsHandler) DeleteCategory(ctx *gin.Context) {
	id, ok := idParam(ctx, "ingredient_category_id")

	if !ok {
		return
	}

	if err := h.store.IngredientCategories.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *IngredientsHandler) ListCategoryIngredients(ctx *gin.Context) {
	id, ok := idParam(ctx, "ingredient_category_id")

	if !ok {
		return
	}

	if _, err := h.store.IngredientCategories.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ingredients, err := h.store.Ingredients.ListByCategory(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ingredients)
}

func (h *IngredientsHandler) List(ctx *gin.Context) {
	ingredients, err := h.store.Ingredients.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ingredients)
}

func (h *IngredientsHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "ingredient_id")

	if !ok {
		return
	}

	ingredient, err := h.store.Ingredients.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ingredient)
}

func (h *IngredientsHandler) Create(ctx *gin.Context) {
	var body IngredientRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ingredient := models.Ingredient{
		Name:       body.Name,
		CategoryID: body.CategoryID,
	}

	if err := h.store.Ingredients.Create(ctx.Request.Context(), &ingredient); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, ingredient)
}

func (h *IngredientsHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "ingredient_id")

	if !ok {
		return
	}

	var body IngredientRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ingredient, err := h.store.Ingredients.Update(ctx.Request.Context(), id, &models.Ingredient{
		Name:       body.Name,
		CategoryID: body.CategoryID,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ingredient)
}

func (h *IngredientsHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "ingredient_id")

	if !ok {
		return
	}

	if err := h.store.Ingredients.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *IngredientsHandler) ListUnits(ctx *gin.Context) {
	units, err := h.store.Units.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, units)
}

func (h *IngredientsHandler) GetUnit(ctx *gin.Context) {
	id, ok := idParam(ctx, "unit_id")

	if !ok {
		return
	}

	unit, err := h.store.Units.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, unit)
}

func (h *IngredientsHandler) CreateUnit(ctx *gin.Context) {
	var body UnitRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	unit := models.Unit{Name: body.Name}

	if err := h.store.Units.Create(ctx.Request.Context(), &unit); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, unit)
}

func (h *IngredientsHandler) UpdateUnit(ctx *gin.Context) {
	id, ok := idParam(ctx, "unit_id")

	if !ok {
		return
	}

	var body UnitRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	unit, err := h.store.Units.Update(ctx.Request.Context(), id, &models.Unit{Name: body.Name})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, unit)
}

func (h *IngredientsHandler) DeleteUnit(ctx *gin.Context) {
	id, ok := idParam(ctx, "unit_id")

	if !ok {
		return
	}

	if err := h.store.Units.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *IngredientsHandler) ListRecipeIngredients(ctx *gin.Context) {
	links, err := h.store.RecipeIngredients.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, links)
}

func (h *IngredientsHandler) GetRecipeIngredient(ctx *gin.Context) {
	id, ok := idParam(ctx, "recipe_ingredient_id")

	if !ok {
		return
	}

	link, err := h.store.RecipeIngredients.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, link)
}

func (h *IngredientsHandler) CreateRecipeIngredient(ctx *gin.Context) {
	var body RecipeIngredientRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	link := models.RecipeIngredient{
		RecipeID:     body.RecipeID,
		IngredientID: body.IngredientID,
		Quantity:     body.Quantity,
		UnitID:       body.UnitID,
	}

	if err := h.store.RecipeIngredients.Create(ctx.Request.Context(), &link); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, link)
}

func (h *IngredientsHandler) UpdateRecipeIngredient(ctx *gin.Context) {
	id, ok := idParam(ctx, "recipe_ingredient_id")

	if !ok {
		return
	}

	var body RecipeIngredientRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	link, err := h.store.RecipeIngredients.Update(ctx.Request.Context(), id, &models.RecipeIngredient{
		RecipeID:     body.RecipeID,
		IngredientID: body.IngredientID,
		Quantity:     body.Quantity,
		UnitID:       body.UnitID,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, link)
}

func (h *IngredientsHandler) DeleteRecipeIngredient(ctx *gin.Context) {
	id, ok := idParam(ctx, "recipe_ingredient_id")

	if !ok {
		return
	}

	if err := h.store.RecipeIngredients.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
