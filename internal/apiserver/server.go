// Package apiserver provides the image generator API server implementation.
package apiserver

import (
	"context"
	"fmt"
	"time"

	"github.com/kart-io/logger"

	"github.com/Afzalshaikh78/ImageGenerator/internal/apiserver/router"
	"github.com/Afzalshaikh78/ImageGenerator/internal/apiserver/store"
	"github.com/Afzalshaikh78/ImageGenerator/internal/pkg/imagegen"
	"github.com/Afzalshaikh78/ImageGenerator/pkg/app"
	"github.com/Afzalshaikh78/ImageGenerator/pkg/auth/jwt"
	"github.com/Afzalshaikh78/ImageGenerator/pkg/component/mongodb"
	imagegenopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/imagegen"
	jwtopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/jwt"
	logopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/logger"
	mwopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/middleware"
	mongoopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/mongodb"
	httpopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/server/http"
	"github.com/Afzalshaikh78/ImageGenerator/pkg/server"
	"github.com/Afzalshaikh78/ImageGenerator/pkg/validator"
)

// Name is the name of the application.
const Name = "imagegen-apiserver"

// Config contains application-related configurations.
type Config struct {
	HTTPOptions     *httpopts.Options
	LogOptions      *logopts.Options
	JWTOptions      *jwtopts.Options
	MongoOptions    *mongoopts.Options
	CORSOptions     *mwopts.CORSOptions
	ImageGenOptions *imagegenopts.Options
	ShutdownTimeout time.Duration
}

// Server represents the API server.
type Server struct {
	srv *server.Server
}

// NewServer initializes and returns a new Server instance.
func (cfg *Config) NewServer(ctx context.Context) (*Server, error) {
	cfg.LogOptions.AddInitialField("service.name", Name)
	cfg.LogOptions.AddInitialField("service.version", app.GetVersion())
	if err := cfg.LogOptions.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Info("Starting imagegen-apiserver...")

	validator.Register()

	mongoClient, err := mongodb.New(ctx, cfg.MongoOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mongodb: %w", err)
	}
	logger.Infow("MongoDB connected", "database", cfg.MongoOptions.Database)

	storeFactory, err := store.NewMongoFactory(ctx, mongoClient)
	if err != nil {
		_ = mongoClient.Close()
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	logger.Info("Store layer initialized")

	jwtAuth, err := jwt.New(jwt.WithOptions(cfg.JWTOptions))
	if err != nil {
		_ = storeFactory.Close()
		return nil, fmt.Errorf("failed to initialize jwt: %w", err)
	}
	logger.Info("JWT authentication initialized")

	generator := imagegen.New(cfg.ImageGenOptions)

	srv := server.New(cfg.HTTPOptions, cfg.CORSOptions,
		server.WithShutdownTimeout(cfg.ShutdownTimeout),
		server.WithCloser(storeFactory.Close),
	)

	router.Register(srv.Engine(), jwtAuth, storeFactory, generator)

	logger.Info("API server is ready")
	return &Server{srv: srv}, nil
}

// Run starts the server and listens for termination signals.
func (s *Server) Run(_ context.Context) error {
	return s.srv.Run()
}
