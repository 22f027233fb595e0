package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mealbase-dev/mealbase/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	// A single connection keeps every statement on the same in-memory
	// database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	st := New(db)
	require.NoError(t, st.AutoMigrate())

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return st
}

func seedRole(t *testing.T, st *Store, name string) *models.Role {
	t.Helper()

	role := &models.Role{Name: name}
	require.NoError(t, st.Roles.Create(context.Background(), role))

	return role
}

func seedUser(t *testing.T, st *Store, email string, roleID uint) *models.User {
	t.Helper()

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: "secret",
		RoleID:   roleID,
	}
	require.NoError(t, st.Users.Create(context.Background(), user))

	return user
}

func TestRoleCreateGetRoundtrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	role := &models.Role{Name: "admin", Description: "full access"}
	require.NoError(t, st.Roles.Create(ctx, role))
	require.NotZero(t, role.ID)

	got, err := st.Roles.Get(ctx, role.ID)
	require.NoError(t, err)
	require.Equal(t, "admin", got.Name)
	require.Equal(t, "full access", got.Description)

	roles, err := st.Roles.List(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 1)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Roles.Get(context.Background(), 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Roles.Update(context.Background(), 999, &models.Role{Name: "ghost"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTwiceReturnsNotFound(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	role := seedRole(t, st, "temp")

	require.NoError(t, st.Roles.Delete(ctx, role.ID))
	require.ErrorIs(t, st.Roles.Delete(ctx, role.ID), ErrNotFound)
}

func TestRoleNameMustBeUnique(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seedRole(t, st, "admin")

	err := st.Roles.Create(ctx, &models.Role{Name: "admin"})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestUserEmailMustBeUnique(t *testing.T) {
	st := newTestStore(t)

	role := seedRole(t, st, "member")
	seedUser(t, st, "a@example.com", role.ID)

	err := st.Users.Create(context.Background(), &models.User{
		Name:     "Other",
		Email:    "a@example.com",
		Password: "secret",
		RoleID:   role.ID,
	})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRequiresExistingRole(t *testing.T) {
	st := newTestStore(t)

	err := st.Users.Create(context.Background(), &models.User{
		Name:     "Orphan",
		Email:    "orphan@example.com",
		Password: "secret",
		RoleID:   999,
	})
	require.ErrorIs(t, err, ErrForeignKey)
}

func TestRoleDeleteCascadesThroughUsers(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	role := seedRole(t, st, "member")
	user := seedUser(t, st, "a@example.com", role.ID)

	group := &models.Group{Name: "household"}
	require.NoError(t, st.Groups.Create(ctx, group))

	membership := &models.UserGroup{UserID: user.ID, GroupID: group.ID}
	require.NoError(t, st.UserGroups.Create(ctx, membership))

	require.NoError(t, st.Roles.Delete(ctx, role.ID))

	_, err := st.Users.Get(ctx, user.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = st.UserGroups.Get(ctx, membership.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// The group itself is untouched.
	_, err = st.Groups.Get(ctx, group.ID)
	require.NoError(t, err)
}

func TestUserGroupPairMustBeUnique(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	role := seedRole(t, st, "member")
	user := seedUser(t, st, "a@example.com", role.ID)

	group := &models.Group{Name: "household"}
	require.NoError(t, st.Groups.Create(ctx, group))

	require.NoError(t, st.UserGroups.Create(ctx, &models.UserGroup{UserID: user.ID, GroupID: group.ID}))

	err := st.UserGroups.Create(ctx, &models.UserGroup{UserID: user.ID, GroupID: group.ID})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestUnitDeleteRestrictedWhileReferenced(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	category := &models.IngredientCategory{Name: "produce"}
	require.NoError(t, st.IngredientCategories.Create(ctx, category))

	ingredient := &models.Ingredient{Name: "tomato", CategoryID: category.ID}
	require.NoError(t, st.Ingredients.Create(ctx, ingredient))

	unit := &models.Unit{Name: "gram"}
	require.NoError(t, st.Units.Create(ctx, unit))

	recipe := &models.Recipe{Name: "salad", PreparationTime: 10}
	require.NoError(t, st.Recipes.Create(ctx, recipe))

	link := &models.RecipeIngredient{
		RecipeID:     recipe.ID,
		IngredientID: ingredient.ID,
		UnitID:       unit.ID,
		Quantity:     "200",
	}
	require.NoError(t, st.RecipeIngredients.Create(ctx, link))

	require.ErrorIs(t, st.Units.Delete(ctx, unit.ID), ErrForeignKey)
	require.ErrorIs(t, st.Ingredients.Delete(ctx, ingredient.ID), ErrForeignKey)

	// Removing the referencing row frees both for deletion.
	require.NoError(t, st.RecipeIngredients.Delete(ctx, link.ID))
	require.NoError(t, st.Units.Delete(ctx, unit.ID))
	require.NoError(t, st.Ingredients.Delete(ctx, ingredient.ID))
}

func TestIngredientCategoryDeleteRestrictedWhileInUse(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	category := &models.IngredientCategory{Name: "produce"}
	require.NoError(t, st.IngredientCategories.Create(ctx, category))

	ingredient := &models.Ingredient{Name: "tomato", CategoryID: category.ID}
	require.NoError(t, st.Ingredients.Create(ctx, ingredient))

	require.ErrorIs(t, st.IngredientCategories.Delete(ctx, category.ID), ErrForeignKey)
}

func TestRecipeDeleteCascadesToLinks(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	recipe := &models.Recipe{Name: "salad", PreparationTime: 10}
	require.NoError(t, st.Recipes.Create(ctx, recipe))

	category := &models.Category{Name: "lunch"}
	require.NoError(t, st.Categories.Create(ctx, category))

	link := &models.RecipeCategory{RecipeID: recipe.ID, CategoryID: category.ID}
	require.NoError(t, st.RecipeCategories.Create(ctx, link))

	require.NoError(t, st.Recipes.Delete(ctx, recipe.ID))

	_, err := st.RecipeCategories.Get(ctx, link.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOverwritesEveryField(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	role := &models.Role{Name: "editor", Description: "can edit"}
	require.NoError(t, st.Roles.Create(ctx, role))

	updated, err := st.Roles.Update(ctx, role.ID, &models.Role{Name: "viewer"})
	require.NoError(t, err)
	require.Equal(t, "viewer", updated.Name)
	require.Empty(t, updated.Description)
}

func TestValidationRejectsMissingFields(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.ErrorIs(t, st.Roles.Create(ctx, &models.Role{}), ErrInvalid)

	role := seedRole(t, st, "member")

	require.ErrorIs(t, st.Users.Create(ctx, &models.User{
		Name:   "No Email",
		RoleID: role.ID,
	}), ErrInvalid)

	require.ErrorIs(t, st.UserGroups.Create(ctx, &models.UserGroup{UserID: 1}), ErrInvalid)
}

func TestValidationRejectsOversizedFields(t *testing.T) {
	st := newTestStore(t)

	err := st.Roles.Create(context.Background(), &models.Role{Name: strings.Repeat("x", 256)})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestListByUserTraversals(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	role := seedRole(t, st, "member")
	alice := seedUser(t, st, "alice@example.com", role.ID)
	bob := seedUser(t, st, "bob@example.com", role.ID)

	list := &models.ShoppingList{UserID: alice.ID}
	require.NoError(t, st.ShoppingLists.Create(ctx, list))

	mine, err := st.ShoppingLists.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	theirs, err := st.ShoppingLists.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Empty(t, theirs)
}

func TestTaskBelongsToProjectAndEmployee(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	employee := &models.Employee{Name: "Dana", Email: "dana@example.com"}
	require.NoError(t, st.Employees.Create(ctx, employee))

	project := &models.Project{Name: "Rollout"}
	require.NoError(t, st.Projects.Create(ctx, project))

	task := &models.Task{
		ProjectID:  project.ID,
		EmployeeID: employee.ID,
		Title:      "Ship it",
		Status:     "open",
	}
	require.NoError(t, st.Tasks.Create(ctx, task))

	byProject, err := st.Tasks.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, byProject, 1)

	byEmployee, err := st.Tasks.ListByEmployee(ctx, employee.ID)
	require.NoError(t, err)
	require.Len(t, byEmployee, 1)

	require.NoError(t, st.Projects.Delete(ctx, project.ID))

	_, err = st.Tasks.Get(ctx, task.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
