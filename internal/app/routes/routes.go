package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzkose/resourcehub/internal/app/controllers"
	"github.com/oguzkose/resourcehub/internal/middleware"
	"github.com/oguzkose/resourcehub/internal/pkg/auth"
)

// Controllers bundles every controller the router mounts
type Controllers struct {
	Auth     *controllers.AuthController
	Resource *controllers.ResourceController
	Search   *controllers.SearchController
	Browse   *controllers.BrowseController
	Catalog  *controllers.CatalogController
}

// SetupRoutes mounts all endpoint groups on the router
func SetupRoutes(router *gin.Engine, c Controllers, jwtService *auth.JWTService) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", c.Auth.Register)
		authGroup.POST("/login", c.Auth.Login)
		authGroup.POST("/logout", middleware.AuthMiddleware(jwtService), c.Auth.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(jwtService), c.Auth.Me)
	}

	resourceGroup := v1.Group("/resources")
	{
		resourceGroup.GET("/recent", c.Resource.Recent)
		resourceGroup.GET("/stats", middleware.OptionalAuthMiddleware(jwtService), c.Resource.Stats)
		resourceGroup.GET("/:id", c.Resource.Get)
		resourceGroup.GET("/:id/download", c.Resource.Download)
		resourceGroup.POST("", middleware.AuthMiddleware(jwtService), c.Resource.Upload)
		resourceGroup.DELETE("/:id", middleware.AuthMiddleware(jwtService), c.Resource.Delete)
	}

	searchGroup := v1.Group("/search")
	{
		searchGroup.GET("", c.Search.Search)
		searchGroup.GET("/advanced", c.Search.Advanced)
		searchGroup.GET("/suggestions", c.Search.Suggestions)
	}

	v1.GET("/browse", c.Browse.Browse)

	v1.GET("/departments", c.Catalog.Departments)
	v1.GET("/courses", c.Catalog.Courses)
	v1.GET("/lecturers", c.Catalog.Lecturers)
}
