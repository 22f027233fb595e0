package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealbase-dev/mealbase/internal/models"
	"github.com/mealbase-dev/mealbase/internal/store"
)

type CategoriesHandler struct {
	store *store.Store
}

func NewCategoriesHandler(st *store.Store) *CategoriesHandler {
	return &CategoriesHandler{store: st}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type RecipeCategoryRequest struct {
	RecipeID   uint `json:"recipe_id" binding:"required"`
	CategoryID uint `json:"category_id" binding:"required"`
}

func (h *CategoriesHandler) List(ctx *gin.Context) {
	categories, err := h.store.Categories.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

func (h *CategoriesHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "category_id")

	if !ok {
		return
	}

	category, err := h.store.Categories.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func (h *CategoriesHandler) Create(ctx *gin.Context) {
	var body CategoryRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	category := models.Category{
		Name:        body.Name,
		Description: body.Description,
	}

	if err := h.store.Categories.Create(ctx.Request.Context(), &category); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func (h *CategoriesHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "category_id")

	if !ok {
		return
	}

	var body CategoryRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	category, err := h.store.Categories.Update(ctx.Request.Context(), id, &models.Category{
		Name:        body.Name,
		Description: body.Description,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func (h *CategoriesHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "category_id")

	if !ok {
		return
	}

	if err := h.store.Categories.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *CategoriesHandler) ListLinks(ctx *gin.Context) {
	links, err := h.store.RecipeCategories.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, links)
}

func (h *CategoriesHandler) GetLink(ctx *gin.Context) {
	id, ok := idParam(ctx, "recipe_category_id")

	if !ok {
		return
	}

	link, err := h.store.RecipeCategories.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, link)
}

func (h *CategoriesHandler) CreateLink(ctx *gin.Context) {
	var body RecipeCategoryRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	link := models.RecipeCategory{
		RecipeID:   body.RecipeID,
		CategoryID: body.CategoryID,
	}

	if err := h.store.RecipeCategories.Create(ctx.Request.Context(), &link); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, link)
}

func (h *CategoriesHandler) UpdateLink(ctx *gin.Context) {
	id, ok := idParam(ctx, "recipe_category_id")

	if !ok {
		return
	}

	var body RecipeCategoryRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	link, err := h.store.RecipeCategories.Update(ctx.Request.Context(), id, &models.RecipeCategory{
		RecipeID:   body.RecipeID,
		CategoryID: body.CategoryID,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, link)
}

func (h *CategoriesHandler) DeleteLink(ctx *gin.Context) {
	id, ok := idParam(ctx, "recipe_category_id")

	if !ok {
		return
	}

	if err := h.store.RecipeCategories.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
