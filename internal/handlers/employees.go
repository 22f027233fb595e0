package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealbase-dev/mealbase/internal/models"
	"github.com/mealbase-dev/mealbase/internal/store"
)

type EmployeesHandler struct {
	store *store.Store
}

func NewEmployeesHandler(st *store.Store) *EmployeesHandler {
	return &EmployeesHandler{store: st}
}

type EmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Post  string `json:"post"`
}

func (r *EmployeeRequest) model() *models.Employee {
	return &models.Employee{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Post:  r.Post,
	}
}

func (h *EmployeesHandler) List(ctx *gin.Context) {
	employees, err := h.store.Employees.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, employees)
}

func (h *EmployeesHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "employee_id")

	if !ok {
		return
	}

	employee, err := h.store.Employees.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, employee)
}

func (h *EmployeesHandler) Create(ctx *gin.Context) {
	var body EmployeeRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	employee := body.model()

	if err := h.store.Employees.Create(ctx.Request.Context(), employee); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, employee)
}

func (h *EmployeesHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "employee_id")

	if !ok {
		return
	}

	var body EmployeeRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	employee, err := h.store.Employees.Update(ctx.Request.Context(), id, body.model())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, employee)
}

func (h *EmployeesHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "employee_id")

	if !ok {
		return
	}

	if err := h.store.Employees.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *EmployeesHandler) ListTasks(ctx *gin.Context) {
	id, ok := idParam(ctx, "employee_id")

	if !ok {
		return
	}

	if _, err := h.store.Employees.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	tasks, err := h.store.Tasks.ListByEmployee(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}
