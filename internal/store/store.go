package store

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mealbase-dev/mealbase/internal/models"
)

// Store owns the database handle for the lifetime of the process and
// exposes one repository per entity. It is constructed once at startup
// and passed down to everything that touches storage.
type Store struct {
	db *gorm.DB

	Roles                *RoleStore
	Users                *UserStore
	Groups               *GroupStore
	UserGroups           *UserGroupStore
	Categories           *CategoryStore
	Recipes              *RecipeStore
	RecipeCategories     *RecipeCategoryStore
	UserRecipes          *UserRecipeStore
	IngredientCategories *IngredientCategoryStore
	Ingredients          *IngredientStore
	Units                *UnitStore
	RecipeIngredients    *RecipeIngredientStore
	Inventories          *InventoryStore
	Plans                *PlanStore
	Menus                *MenuStore
	MenuRecipes          *MenuRecipeStore
	ShoppingLists        *ShoppingListStore
	ShoppingListItems    *ShoppingListItemStore
	Notifications        *NotificationStore
	Employees            *EmployeeStore
	Projects             *ProjectStore
	Tasks                *TaskStore
}

// New wraps an already-open gorm handle. The handle must have been
// opened with TranslateError so that constraint failures surface as
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func New(db *gorm.DB) *Store {
	return &Store{
		db:                   db,
		Roles:                &RoleStore{db: db},
		Users:                &UserStore{db: db},
		Groups:               &GroupStore{db: db},
		UserGroups:           &UserGroupStore{db: db},
		Categories:           &CategoryStore{db: db},
		Recipes:              &RecipeStore{db: db},
		RecipeCategories:     &RecipeCategoryStore{db: db},
		UserRecipes:          &UserRecipeStore{db: db},
		IngredientCategories: &IngredientCategoryStore{db: db},
		Ingredients:          &IngredientStore{db: db},
		Units:                &UnitStore{db: db},
		RecipeIngredients:    &RecipeIngredientStore{db: db},
		Inventories:          &InventoryStore{db: db},
		Plans:                &PlanStore{db: db},
		Menus:                &MenuStore{db: db},
		MenuRecipes:          &MenuRecipeStore{db: db},
		ShoppingLists:        &ShoppingListStore{db: db},
		ShoppingListItems:    &ShoppingListItemStore{db: db},
		Notifications:        &NotificationStore{db: db},
		Employees:            &EmployeeStore{db: db},
		Projects:             &ProjectStore{db: db},
		Tasks:                &TaskStore{db: db},
	}
}

// Open connects to Postgres and returns the store handle.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		return nil, err
	}

	return New(db), nil
}

// AutoMigrate creates any missing tables. Entities are migrated in
// dependency order so foreign keys resolve on a fresh database.
func (s *Store) AutoMigrate() error {
	entities := []interface{}{
		&models.Role{},
		&models.User{},
		&models.Group{},
		&models.UserGroup{},
		&models.Category{},
		&models.Recipe{},
		&models.RecipeCategory{},
		&models.UserRecipe{},
		&models.IngredientCategory{},
		&models.Ingredient{},
		&models.Unit{},
		&models.RecipeIngredient{},
		&models.Inventory{},
		&models.Plan{},
		&models.Menu{},
		&models.MenuRecipe{},
		&models.ShoppingList{},
		&models.ShoppingListItem{},
		&models.Notification{},
		&models.Employee{},
		&models.Project{},
		&models.Task{},
	}

	migrator := s.db.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := s.db.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}

// Close releases the underlying connection at process shutdown.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()

	if err != nil {
		return err
	}

	return sqlDB.Close()
}
