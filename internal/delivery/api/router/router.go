// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"todo/config"
	"todo/internal/delivery/api/middleware"
	"todo/internal/delivery/api/router/handler"
	"todo/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler  *handler.AuthHandler
	TodoHandler  *handler.TodoHandler
	UserHandler  *handler.UserHandler
	SessionGuard *middleware.SessionGuard
	Config       *config.Config
	Gatherer     prometheus.Gatherer `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler  *handler.AuthHandler
	todoHandler  *handler.TodoHandler
	userHandler  *handler.UserHandler
	sessionGuard *middleware.SessionGuard
	config       *config.Config
	gatherer     prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:  params.AuthHandler,
		todoHandler:  params.TodoHandler,
		userHandler:  params.UserHandler,
		sessionGuard: params.SessionGuard,
		config:       params.Config,
		gatherer:     params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.gatherer != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))
	}

	// Auth routes work signed out
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/session", r.authHandler.GetSession)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signout", r.authHandler.SignOut)
		authGroup.POST("/reset", r.authHandler.ResetPassword)
		authGroup.POST("/form", r.authHandler.SubmitForm)
	}

	apiV1 := e.Group("/api/v1")

	// Todos belong to the signed-in identity
	todosGroup := apiV1.Group("/todos")
	todosGroup.Use(r.sessionGuard.Require)
	{
		todosGroup.GET("", r.todoHandler.ListTodos)
		todosGroup.POST("", r.todoHandler.CreateTodo)
		todosGroup.GET("/stream", r.todoHandler.Stream)
		todosGroup.POST("/images", r.todoHandler.UploadImage)
		todosGroup.GET("/:id", r.todoHandler.GetTodo)
		todosGroup.PATCH("/:id", r.todoHandler.UpdateTodo)
		todosGroup.POST("/:id/toggle", r.todoHandler.ToggleTodo)
		todosGroup.DELETE("/:id", r.todoHandler.DeleteTodo)
	}

	// The users collection is not tied to the session
	usersGroup := apiV1.Group("/users")
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PATCH("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}
}
