package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/mealbase-dev/mealbase/internal/models"
	"github.com/mealbase-dev/mealbase/internal/store"
)

type PlansHandler struct {
	store *store.Store
}

func NewPlansHandler(st *store.Store) *PlansHandler {
	return &PlansHandler{store: st}
}

type PlanRequest struct {
	UserID    uint           `json:"user_id" binding:"required"`
	StartDate datatypes.Date `json:"start_date" binding:"required"`
	EndDate   datatypes.Date `json:"end_date" binding:"required"`
	PlanType  string         `json:"plan_type"`
}

type MenuRequest struct {
	PlanID uint   `json:"plan_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

type MenuRecipeRequest struct {
	MenuID   uint `json:"menu_id" binding:"required"`
	RecipeID uint `json:"recipe_id" binding:"required"`
}

func (r *PlanRequest) model() *models.Plan {
	return &models.Plan{
		UserID:    r.UserID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		PlanType:  r.PlanType,
	}
}

func (h *PlansHandler) List(ctx *gin.Context) {
	plans, err := h.store.Plans.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, plans)
}

func (h *PlansHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "plan_id")

	if !ok {
		return
	}

	plan, err := h.store.Plans.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, plan)
}

func (h *PlansHandler) Create(ctx *gin.Context) {
	var body PlanRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	plan := body.model()

	if err := h.store.Plans.Create(ctx.Request.Context(), plan); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, plan)
}

func (h *PlansHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "plan_id")

	if !ok {
		return
	}

	var body PlanRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	plan, err := h.store.Plans.Update(ctx.Request.Context(), id, body.model())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, plan)
}

func (h *PlansHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "plan_id")

	if !ok {
		return
	}

	if err := h.store.Plans.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *PlansHandler) ListMenus(ctx *gin.Context) {
	id, ok := idParam(ctx, "plan_id")

	if !ok {
		return
	}

	if _, err := h.store.Plans.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	menus, err := h.store.Menus.ListByPlan(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, menus)
}

func (h *PlansHandler) ListAllMenus(ctx *gin.Context) {
	menus, err := h.store.Menus.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, menus)
}

func (h *PlansHandler) GetMenu(ctx *gin.Context) {
	id, ok := idParam(ctx, "menu_id")

	if !ok {
		return
	}

	menu, err := h.store.Menus.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, menu)
}

func (h *PlansHandler) CreateMenu(ctx *gin.Context) {
	var body MenuRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	menu := models.Menu{
		PlanID: body.PlanID,
		Name:   body.Name,
	}

	if err := h.store.Menus.Create(ctx.Request.Context(), &menu); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, menu)
}

func (h *PlansHandler) UpdateMenu(ctx *gin.Context) {
	id, ok := idParam(ctx, "menu_id")

	if !ok {
		return
	}

	var body MenuRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	menu, err := h.store.Menus.Update(ctx.Request.Context(), id, &models.Menu{
		PlanID: body.PlanID,
		Name:   body.Name,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, menu)
}

func (h *PlansHandler) DeleteMenu(ctx *gin.Context) {
	id, ok := idParam(ctx, "menu_id")

	if !ok {
		return
	}

	if err := h.store.Menus.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *PlansHandler) ListMenuRecipes(ctx *gin.Context) {
	id, ok := idParam(ctx, "menu_id")

	if !ok {
		return
	}

	if _, err := h.store.Menus.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	links, err := h.store.MenuRecipes.ListByMenu(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, links)
}

func (h *PlansHandler) ListAllMenuRecipes(ctx *gin.Context) {
	links, err := h.store.MenuRecipes.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, links)
}

func (h *PlansHandler) GetMenuRecipe(ctx *gin.Context) {
	id, ok := idParam(ctx, "menu_recipe_id")

	if !ok {
		return
	}

	link, err := h.store.MenuRecipes.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, link)
}

func (h *PlansHandler) CreateMenuRecipe(ctx *gin.Context) {
	var body MenuRecipeRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	link := models.MenuRecipe{
		MenuID:   body.MenuID,
		RecipeID: body.RecipeID,
	}

	if err := h.store.MenuRecipes.Create(ctx.Request.Context(), &link); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, link)
}

func (h *PlansHandler) UpdateMenuRecipe(ctx *gin.Context) {
	id, ok := idParam(ctx, "menu_recipe_id")

	if !ok {
		return
	}

	var body MenuRecipeRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	link, err := h.store.MenuRecipes.Update(ctx.Request.Context(), id, &models.MenuRecipe{
		MenuID:   body.MenuID,
		RecipeID: body.RecipeID,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, link)
}

func (h *PlansHandler) DeleteMenuRecipe(ctx *gin.Context) {
	id, ok := idParam(ctx, "menu_recipe_id")

	if !ok {
		return
	}

	if err := h.store.MenuRecipes.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
