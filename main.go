package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-runner/api"
	gameapi "github.com/beka-birhanu/vinom-runner/api/game"
	api_i "github.com/beka-birhanu/vinom-runner/api/i"
	"github.com/beka-birhanu/vinom-runner/api/identity"
	"github.com/beka-birhanu/vinom-runner/config"
	"github.com/beka-birhanu/vinom-runner/infrastruture/token"
	"github.com/beka-birhanu/vinom-runner/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const sweepInterval = time.Minute

// Global variables for dependencies
var (
	rootLogger         *logrus.Logger
	appLogger          *logrus.Entry
	gameSessionManager *service.GameSessionManager
	jwtTokenizer       *token.JwtService
	sessionController  api_i.Controller
	router             *api.Router
)

func initLogger() {
	var err error
	rootLogger, err = config.NewLogger(config.Envs.LogLevel, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating logger: %v\n", err)
		os.Exit(1)
	}
	appLogger = config.Component(rootLogger, "APP")
}

func initSessionManager() {
	var err error
	gameSessionManager, err = service.NewGameSessionManager(&service.Config{
		Cols:   config.Envs.MazeCols,
		Rows:   config.Envs.MazeRows,
		Seed:   config.Envs.MazeSeed,
		TTL:    config.Envs.SessionTTL,
		Logger: config.Component(rootLogger, "SESSION-MANAGER"),
	})
	if err != nil {
		appLogger.WithError(err).Error("Creating session manager")
		os.Exit(1)
	}
	appLogger.Info("Session manager initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initSessionController() {
	var err error
	sessionController, err = gameapi.NewSessionController(gameSessionManager, jwtTokenizer, config.Envs.SessionTTL)
	if err != nil {
		appLogger.WithError(err).Error("Creating session controller")
		os.Exit(1)
	}
	appLogger.Info("Session controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{sessionController},
		AuthorizationMiddleware: identity.Authoriz(jwtTokenizer),
	})
	appLogger.Info("Router initialized")
}

func main() {
	config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	initLogger()
	initSessionManager()
	initJWTTokenizer()
	initSessionController()
	initRouter()

	go gameSessionManager.RunSweeper(ctx, sweepInterval)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.WithError(err).Error("Starting server")
		os.Exit(1)
	}
}
