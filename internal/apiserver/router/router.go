// Package router provides API server routing.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/Afzalshaikh78/ImageGenerator/internal/apiserver/biz"
	"github.com/Afzalshaikh78/ImageGenerator/internal/apiserver/handler"
	"github.com/Afzalshaikh78/ImageGenerator/internal/apiserver/store"
	"github.com/Afzalshaikh78/ImageGenerator/internal/pkg/imagegen"
	"github.com/Afzalshaikh78/ImageGenerator/pkg/auth"
	"github.com/Afzalshaikh78/ImageGenerator/pkg/middleware"
)

// Register wires the stores, services, and handlers into the engine.
func Register(engine *gin.Engine, authn auth.Authenticator, storeFactory store.Factory, generator imagegen.Generator) {
	logger.Info("Registering API routes...")

	authBiz := biz.NewAuthService(authn, storeFactory)
	userBiz := biz.NewUserService(storeFactory)
	imageBiz := biz.NewImageService(storeFactory, generator)

	authHandler := handler.NewAuthHandler(authBiz)
	userHandler := handler.NewUserHandler(userBiz)
	imageHandler := handler.NewImageHandler(imageBiz)

	// Liveness probe
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API Working")
	})

	api := engine.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/login", authHandler.Login)
			user.POST("/register", authHandler.Register)

			userProtected := user.Group("")
			userProtected.Use(middleware.Auth(authn))
			{
				userProtected.GET("/credits", userHandler.Credits)
			}
		}

		image := api.Group("/image")
		image.Use(middleware.Auth(authn))
		{
			image.POST("/generate", imageHandler.Generate)
		}
	}
}
