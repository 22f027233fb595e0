package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealbase-dev/mealbase/internal/models"
	"github.com/mealbase-dev/mealbase/internal/store"
)

type RecipesHandler struct {
	store *store.Store
}

func NewRecipesHandler(st *store.Store) *RecipesHandler {
	return &RecipesHandler{store: st}
}

type RecipeRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Instructions    string `json:"instructions"`
	Difficulty      string `json:"difficulty"`
	PreparationTime int    `json:"preparation_time"`
	IsPublic        bool   `json:"is_public"`
}

type UserRecipeRequest struct {
	UserID   uint `json:"user_id" binding:"required"`
	RecipeID uint `json:"recipe_id" binding:"required"`
	IsOwner  bool `json:"is_owner"`
}

func (r *RecipeRequest) model() *models.Recipe {
	return &models.Recipe{
		Name:            r.Name,
		Description:     r.Description,
		Instructions:    r.Instructions,
		Difficulty:      r.Difficulty,
		PreparationTime: r.PreparationTime,
		IsPublic:        r.IsPublic,
	}
}

func (h *RecipesHandler) List(ctx *gin.Context) {
	recipes, err := h.store.Recipes.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, recipes)
}

func (h *RecipesHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "recipe_id")

	if !ok {
		return
	}

	recipe, err := h.store.Recipes.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, recipe)
}

func (h *RecipesHandler) Create(ctx *gin.Context) {
	var body RecipeRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	recipe := body.model()

	if err := h.store.Recipes.Create(ctx.Request.Context(), recipe); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, recipe)
}

func (h *RecipesHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "recipe_id")

	if !ok {
		return
	}

	var body RecipeRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	recipe, err := h.store.Recipes.Update(ctx.Request.Context(), id, body.model())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, recipe)
}

func (h *RecipesHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "recipe_id")

	if !ok {
		return
	}

	if err := h.store.Recipes.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *RecipesHandler) ListIngredients(ctx *gin.Context) {
	id, ok := idParam(ctx, "recipe_id")

	if !ok {
		return
	}

	if _, err := h.store.Recipes.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	links, err := h.store.RecipeIngredients.ListByRecipe(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, links)
}

func (h *RecipesHandler) ListCategories(ctx *gin.Context) {
	id, ok := idParam(ctx, "recipe_id")

	if !ok {
		return
	}

	if _, err := h.store.Recipes.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	links, err := h.store.RecipeCategories.ListByRecipe(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, links)
}

func (h *RecipesHandler) ListUserRecipes(ctx *gin.Context) {
	links, err := h.store.UserRecipes.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, links)
}

func (h *RecipesHandler) GetUserRecipe(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_recipe_id")

	if !ok {
		return
	}

	link, err := h.store.UserRecipes.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, link)
}

func (h *RecipesHandler) CreateUserRecipe(ctx *gin.Context) {
	var body UserRecipeRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	link := models.UserRecipe{
		UserID:   body.UserID,
		RecipeID: body.RecipeID,
		IsOwner:  body.IsOwner,
	}

	if err := h.store.UserRecipes.Create(ctx.Request.Context(), &link); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, link)
}

func (h *RecipesHandler) UpdateUserRecipe(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_recipe_id")

	if !ok {
		return
	}

	var body UserRecipeRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	link, err := h.store.UserRecipes.Update(ctx.Request.Context(), id, &models.UserRecipe{
		UserID:   body.UserID,
		RecipeID: body.RecipeID,
		IsOwner:  body.IsOwner,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, link)
}

func (h *RecipesHandler) DeleteUserRecipe(ctx *gin.Context) {
	id, ok := idParam(ctx, "user_recipe_id")

	if !ok {
		return
	}

	if err := h.store.UserRecipes.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
