package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mealbase-dev/mealbase/internal/models"
)

type ProjectStore struct {
	db *gorm.DB
}

func (s *ProjectStore) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project

	if err := s.db.WithContext(ctx).Find(&projects).Error; err != nil {
		return nil, translate("project", err)
	}

	return projects, nil
}

func (s *ProjectStore) Get(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project

	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, translate("project", err)
	}

	return &project, nil
}

func (s *ProjectStore) Create(ctx context.Context, project *models.Project) error {
	if err := validateProject(project); err != nil {
		return err
	}

	return translate("project", s.db.WithContext(ctx).Create(project).Error)
}

func (s *ProjectStore) Update(ctx context.Context, id uint, fields *models.Project) (*models.Project, error) {
	if err := validateProject(fields); err != nil {
		return nil, err
	}

	project, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	project.Name = fields.Name
	project.Description = fields.Description
	project.InitDate = fields.InitDate
	project.FinishDate = fields.FinishDate

	if err := s.db.WithContext(ctx).Save(project).Error; err != nil {
		return nil, translate("project", err)
	}

	return project, nil
}

func (s *ProjectStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Project{}, id)

	if result.Error != nil {
		return translate("project", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("project: %w", ErrNotFound)
	}

	return nil
}

func validateProject(project *models.Project) error {
	return firstError(
		required("project", "name", project.Name),
		maxLen("project", "name", project.Name, 50),
		maxLen("project", "description", project.Description, 50),
	)
}

type TaskStore struct {
	db *gorm.DB
}

func (s *TaskStore) List(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task

	if err := s.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, translate("task", err)
	}

	return tasks, nil
}

func (s *TaskStore) ListByProject(ctx context.Context, projectID uint) ([]models.Task, error) {
	var tasks []models.Task

	if err := s.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, translate("task", err)
	}

	return tasks, nil
}

func (s *TaskStore) ListByEmployee(ctx context.Context, employeeID uint) ([]models.Task, error) {
	var tasks []models.Task

	if err := s.db.WithContext(ctx).Where("employee_id = ?", employeeID).Find(&tasks).Error; err != nil {
		return nil, translate("task", err)
	}

	return tasks, nil
}

func (s *TaskStore) Get(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task

	if err := s.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, translate("task", err)
	}

	return &task, nil
}

func (s *TaskStore) Create(ctx context.Context, task *models.Task) error {
	if err := validateTask(task); err != nil {
		return err
	}

	return translate("task", s.db.WithContext(ctx).Create(task).Error)
}

func (s *TaskStore) Update(ctx context.Context, id uint, fields *models.Task) (*models.Task, error) {
	if err := validateTask(fields); err != nil {
		return nil, err
	}

	task, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	task.ProjectID = fields.ProjectID
	task.EmployeeID = fields.EmployeeID
	task.Title = fields.Title
	task.Description = fields.Description
	task.Deadline = fields.Deadline
	task.Status = fields.Status

	if err := s.db.WithContext(ctx).Save(task).Error; err != nil {
		return nil, translate("task", err)
	}

	return task, nil
}

func (s *TaskStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Task{}, id)

	if result.Error != nil {
		return translate("task", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("task: %w", ErrNotFound)
	}

	return nil
}

func validateTask(task *models.Task) error {
	return firstError(
		requiredID("task", "project_id", task.ProjectID),
		requiredID("task", "employee_id", task.EmployeeID),
		required("task", "title", task.Title),
		required("task", "status", task.Status),
		maxLen("task", "title", task.Title, 50),
		maxLen("task", "description", task.Description, 500),
		maxLen("task", "status", task.Status, 20),
	)
}
