package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/mealbase-dev/mealbase/internal/models"
	"github.com/mealbase-dev/mealbase/internal/store"
)

type ProjectsHandler struct {
	store *store.Store
}

func NewProjectsHandler(st *store.Store) *ProjectsHandler {
	return &ProjectsHandler{store: st}
}

type ProjectRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	InitDate    datatypes.Date `json:"init_date" binding:"required"`
	FinishDate  datatypes.Date `json:"finish_date" binding:"required"`
}

type TaskRequest struct {
	ProjectID   uint           `json:"project_id" binding:"required"`
	EmployeeID  uint           `json:"employee_id" binding:"required"`
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Deadline    datatypes.Date `json:"deadline" binding:"required"`
	Status      string         `json:"status" binding:"required"`
}

func (r *ProjectRequest) model() *models.Project {
	return &models.Project{
		Name:        r.Name,
		Description: r.Description,
		InitDate:    r.InitDate,
		FinishDate:  r.FinishDate,
	}
}

func (r *TaskRequest) model() *models.Task {
	return &models.Task{
		ProjectID:   r.ProjectID,
		EmployeeID:  r.EmployeeID,
		Title:       r.Title,
		Description: r.Description,
		Deadline:    r.Deadline,
		Status:      r.Status,
	}
}

func (h *ProjectsHandler) List(ctx *gin.Context) {
	projects, err := h.store.Projects.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func (h *ProjectsHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "project_id")

	if !ok {
		return
	}

	project, err := h.store.Projects.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *ProjectsHandler) Create(ctx *gin.Context) {
	var body ProjectRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project := body.model()

	if err := h.store.Projects.Create(ctx.Request.Context(), project); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

func (h *ProjectsHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "project_id")

	if !ok {
		return
	}

	var body ProjectRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.store.Projects.Update(ctx.Request.Context(), id, body.model())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *ProjectsHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "project_id")

	if !ok {
		return
	}

	if err := h.store.Projects.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *ProjectsHandler) ListTasks(ctx *gin.Context) {
	id, ok := idParam(ctx, "project_id")

	if !ok {
		return
	}

	if _, err := h.store.Projects.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	tasks, err := h.store.Tasks.ListByProject(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

func (h *ProjectsHandler) ListAllTasks(ctx *gin.Context) {
	tasks, err := h.store.Tasks.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

func (h *ProjectsHandler) GetTask(ctx *gin.Context) {
	id, ok := idParam(ctx, "task_id")

	if !ok {
		return
	}

	task, err := h.store.Tasks.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func (h *ProjectsHandler) CreateTask(ctx *gin.Context) {
	var body TaskRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task := body.model()

	if err := h.store.Tasks.Create(ctx.Request.Context(), task); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

func (h *ProjectsHandler) UpdateTask(ctx *gin.Context) {
	id, ok := idParam(ctx, "task_id")

	if !ok {
		return
	}

	var body TaskRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.store.Tasks.Update(ctx.Request.Context(), id, body.model())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func (h *ProjectsHandler) DeleteTask(ctx *gin.Context) {
	id, ok := idParam(ctx, "task_id")

	if !ok {
		return
	}

	if err := h.store.Tasks.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
