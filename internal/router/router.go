package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mealbase-dev/mealbase/internal/config"
	"github.com/mealbase-dev/mealbase/internal/handlers"
	"github.com/mealbase-dev/mealbase/internal/middleware"
	"github.com/mealbase-dev/mealbase/internal/store"
	"github.com/mealbase-dev/mealbase/internal/types"
)

func NewRouter(st *store.Store, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(st)
	roles := handlers.NewRolesHandler(st)
	users := handlers.NewUsersHandler(st)
	groups := handlers.NewGroupsHandler(st)
	categories := handlers.NewCategoriesHandler(st)
	recipes := handlers.NewRecipesHandler(st)
	ingredients := handlers.NewIngredientsHandler(st)
	inventories := handlers.NewInventoriesHandler(st)
	plans := handlers.NewPlansHandler(st)
	shoppingLists := handlers.NewShoppingListsHandler(st)
	notifications := handlers.NewNotificationsHandler(st)
	employees := handlers.NewEmployeesHandler(st)
	projects := handlers.NewProjectsHandler(st)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.JWTAuth(st), authHandler.Me)
		}

		guarded := api.Group("", middleware.APIKeyAuth(cfg.APIKey))

		rolesGroup := guarded.Group("/roles")
		{
			rolesGroup.GET("", roles.List)
			rolesGroup.POST("", roles.Create)
			rolesGroup.GET("/:role_id", roles.Get)
			rolesGroup.PUT("/:role_id", roles.Update)
			rolesGroup.DELETE("/:role_id", roles.Delete)
			rolesGroup.GET("/:role_id/users", roles.ListUsers)
		}

		usersGroup := guarded.Group("/users")
		{
			usersGroup.GET("", users.List)
			usersGroup.POST("", users.Create)
			usersGroup.GET("/:user_id", users.Get)
			usersGroup.PUT("/:user_id", users.Update)
			usersGroup.DELETE("/:user_id", users.Delete)
			usersGroup.GET("/:user_id/groups", users.ListGroups)
			usersGroup.GET("/:user_id/recipes", users.ListRecipes)
			usersGroup.GET("/:user_id/inventories", users.ListInventories)
			usersGroup.GET("/:user_id/plans", users.ListPlans)
			usersGroup.GET("/:user_id/shopping-lists", users.ListShoppingLists)
			usersGroup.GET("/:user_id/notifications", users.ListNotifications)
		}

		groupsGroup := guarded.Group("/groups")
		{
			groupsGroup.GET("", groups.List)
			groupsGroup.POST("", groups.Create)
			groupsGroup.GET("/:group_id", groups.Get)
			groupsGroup.PUT("/:group_id", groups.Update)
			groupsGroup.DELETE("/:group_id", groups.Delete)
			groupsGroup.GET("/:group_id/users", groups.ListMembers)
		}

		userGroups := guarded.Group("/user-groups")
		{
			userGroups.GET("", groups.ListMemberships)
			userGroups.POST("", groups.CreateMembership)
			userGroups.GET("/:user_group_id", groups.GetMembership)
			userGroups.PUT("/:user_group_id", groups.UpdateMembership)
			userGroups.DELETE("/:user_group_id", groups.DeleteMembership)
		}

		categoriesGroup := guarded.Group("/categories")
		{
			categoriesGroup.GET("", categories.List)
			categoriesGroup.POST("", categories.Create)
			categoriesGroup.GET("/:category_id", categories.Get)
			categoriesGroup.PUT("/:category_id", categories.Update)
			categoriesGroup.DELETE("/:category_id", categories.Delete)
		}

		recipeCategories := guarded.Group("/recipe-categories")
		{
			recipeCategories.GET("", categories.ListLinks)
			recipeCategories.POST("", categories.CreateLink)
			recipeCategories.GET("/:recipe_category_id", categories.GetLink)
			recipeCategories.PUT("/:recipe_category_id", categories.UpdateLink)
			recipeCategories.DELETE("/:recipe_category_id", categories.DeleteLink)
		}

		recipesGroup := guarded.Group("/recipes")
		{
			recipesGroup.GET("", recipes.List)
			recipesGroup.POST("", recipes.Create)
			recipesGroup.GET("/:recipe_id", recipes.Get)
			recipesGroup.PUT("/:recipe_id", recipes.Update)
			recipesGroup.DELETE("/:recipe_id", recipes.Delete)
			recipesGroup.GET("/:recipe_id/ingredients", recipes.ListIngredients)
			recipesGroup.GET("/:recipe_id/categories", recipes.ListCategories)
		}

		userRecipes := guarded.Group("/user-recipes")
		{
			userRecipes.GET("", recipes.ListUserRecipes)
			userRecipes.POST("", recipes.CreateUserRecipe)
			userRecipes.GET("/:user_recipe_id", recipes.GetUserRecipe)
			userRecipes.PUT("/:user_recipe_id", recipes.UpdateUserRecipe)
			userRecipes.DELETE("/:user_recipe_id", recipes.DeleteUserRecipe)
		}

		ingredientCategories := guarded.Group("/ingredient-categories")
		{
			ingredientCategories.GET("", ingredients.ListCategories)
			ingredientCategories.POST("", ingredients.CreateCategory)
			ingredientCategories.GET("/:ingredient_category_id", ingredients.GetCategory)
			ingredientCategories.PUT("/:ingredient_category_id", ingredients.UpdateCategory)
			ingredientCategories.DELETE("/:ingredient_category_id", ingredients.DeleteCategory)
			ingredientCategories.GET("/:ingredient_category_id/ingredients", ingredients.ListCategoryIngredients)
		}

		ingredientsGroup := guarded.Group("/ingredients")
		{
			ingredientsGroup.GET("", ingredients.List)
			ingredientsGroup.POST("", ingredients.Create)
			ingredientsGroup.GET("/:ingredient_id", ingredients.Get)
			ingredientsGroup.PUT("/:ingredient_id", ingredients.Update)
			ingredientsGroup.DELETE("/:ingredient_id", ingredients.Delete)
		}

		units := guarded.Group("/units")
		{
			units.GET("", ingredients.ListUnits)
			units.POST("", ingredients.CreateUnit)
			units.GET("/:unit_id", ingredients.GetUnit)
			units.PUT("/:unit_id", ingredients.UpdateUnit)
			units.DELETE("/:unit_id", ingredients.DeleteUnit)
		}

		recipeIngredients := guarded.Group("/recipe-ingredients")
		{
			recipeIngredients.GET("", ingredients.ListRecipeIngredients)
			recipeIngredients.POST("", ingredients.CreateRecipeIngredient)
			recipeIngredients.GET("/:recipe_ingredient_id", ingredients.GetRecipeIngredient)
			recipeIngredients.PUT("/:recipe_ingredient_id", ingredients.UpdateRecipeIngredient)
			recipeIngredients.DELETE("/:recipe_ingredient_id", ingredients.DeleteRecipeIngredient)
		}

		inventoriesGroup := guarded.Group("/inventories")
		{
			inventoriesGroup.GET("", inventories.List)
			inventoriesGroup.POST("", inventories.Create)
			inventoriesGroup.GET("/:inventory_id", inventories.Get)
			inventoriesGroup.PUT("/:inventory_id", inventories.Update)
			inventoriesGroup.DELETE("/:inventory_id", inventories.Delete)
		}

		plansGroup := guarded.Group("/plans")
		{
			plansGroup.GET("", plans.List)
			plansGroup.POST("", plans.Create)
			plansGroup.GET("/:plan_id", plans.Get)
			plansGroup.PUT("/:plan_id", plans.Update)
			plansGroup.DELETE("/:plan_id", plans.Delete)
			plansGroup.GET("/:plan_id/menus", plans.ListMenus)
		}

		menus := guarded.Group("/menus")
		{
			menus.GET("", plans.ListAllMenus)
			menus.POST("", plans.CreateMenu)
			menus.GET("/:menu_id", plans.GetMenu)
			menus.PUT("/:menu_id", plans.UpdateMenu)
			menus.DELETE("/:menu_id", plans.DeleteMenu)
			menus.GET("/:menu_id/recipes", plans.ListMenuRecipes)
		}

		menuRecipes := guarded.Group("/menu-recipes")
		{
			menuRecipes.GET("", plans.ListAllMenuRecipes)
			menuRecipes.POST("", plans.CreateMenuRecipe)
			menuRecipes.GET("/:menu_recipe_id", plans.GetMenuRecipe)
			menuRecipes.PUT("/:menu_recipe_id", plans.UpdateMenuRecipe)
			menuRecipes.DELETE("/:menu_recipe_id", plans.DeleteMenuRecipe)
		}

		shoppingListsGroup := guarded.Group("/shopping-lists")
		{
			shoppingListsGroup.GET("", shoppingLists.List)
			shoppingListsGroup.POST("", shoppingLists.Create)
			shoppingListsGroup.GET("/:list_id", shoppingLists.Get)
			shoppingListsGroup.PUT("/:list_id", shoppingLists.Update)
			shoppingListsGroup.DELETE("/:list_id", shoppingLists.Delete)
			shoppingListsGroup.GET("/:list_id/items", shoppingLists.ListItems)
		}

		shoppingListItems := guarded.Group("/shopping-list-items")
		{
			shoppingListItems.GET("", shoppingLists.ListAllItems)
			shoppingListItems.POST("", shoppingLists.CreateItem)
			shoppingListItems.GET("/:item_id", shoppingLists.GetItem)
			shoppingListItems.PUT("/:item_id", shoppingLists.UpdateItem)
			shoppingListItems.DELETE("/:item_id", shoppingLists.DeleteItem)
		}

		notificationsGroup := guarded.Group("/notifications")
		{
			notificationsGroup.GET("", notifications.List)
			notificationsGroup.POST("", notifications.Create)
			notificationsGroup.GET("/:notification_id", notifications.Get)
			notificationsGroup.PUT("/:notification_id", notifications.Update)
			notificationsGroup.DELETE("/:notification_id", notifications.Delete)
		}

		employeesGroup := guarded.Group("/employees")
		{
			employeesGroup.GET("", employees.List)
			employeesGroup.POST("", employees.Create)
			employeesGroup.GET("/:employee_id", employees.Get)
			employeesGroup.PUT("/:employee_id", employees.Update)
			employeesGroup.DELETE("/:employee_id", employees.Delete)
			employeesGroup.GET("/:employee_id/tasks", employees.ListTasks)
		}

		projectsGroup := guarded.Group("/projects")
		{
			projectsGroup.GET("", projects.List)
			projectsGroup.POST("", projects.Create)
			projectsGroup.GET("/:project_id", projects.Get)
			projectsGroup.PUT("/:project_id", projects.Update)
			projectsGroup.DELETE("/:project_id", projects.Delete)
			projectsGroup.GET("/:project_id/tasks", projects.ListTasks)
		}

		tasks := guarded.Group("/tasks")
		{
			tasks.GET("", projects.ListAllTasks)
			tasks.POST("", projects.CreateTask)
			tasks.GET("/:task_id", projects.GetTask)
			tasks.PUT("/:task_id", projects.UpdateTask)
			tasks.DELETE("/:task_id", projects.DeleteTask)
		}
	}

	return r
}
