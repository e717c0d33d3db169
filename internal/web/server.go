package web

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/kmureithi/devfolio/internal/clients/directory"
	"github.com/kmureithi/devfolio/internal/config"
	"github.com/kmureithi/devfolio/internal/repositories"
	"github.com/kmureithi/devfolio/internal/services"
	log "github.com/sirupsen/logrus"
)

const sessionCookie = "session_token"

type Server struct {
	engine       *gin.Engine
	sessions     *services.SessionStore
	board        *services.Board
	registration *services.Registration
	directory    *directory.Client
	accounts     *repositories.Accounts
	visits       *repositories.Visits
	oauthURL     string
	hashingSalt  string
}

func NewServer(cfg config.ServerConfig, sessions *services.SessionStore, board *services.Board,
	registration *services.Registration, directoryClient *directory.Client,
	accounts *repositories.Accounts, visits *repositories.Visits, oauthRedirectURL string) *Server {

	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	s := &Server{
		sessions:     sessions,
		board:        board,
		registration: registration,
		directory:    directoryClient,
		accounts:     accounts,
		visits:       visits,
		oauthURL:     oauthRedirectURL,
		hashingSalt:  generateSalt(),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.LoadHTMLGlob("templates/*")
	engine.Use(s.visitTrackingMiddleware())
	engine.Use(s.sessionMiddleware())

	engine.GET("/", s.indexPage)
	engine.GET("/policies", s.policiesPage)

	engine.GET("/jobs", s.jobsPage)
	engine.GET("/jobs/new", s.jobFormPage)
	engine.POST("/jobs", s.createJob)
	engine.POST("/jobs/:id/apply", s.applyToJob)

	engine.GET("/sign_up", s.signupPage)
	engine.POST("/sign_up", s.signup)
	engine.GET("/log_in", s.loginPage)
	engine.POST("/log_in", s.login)
	engine.POST("/log_out", s.logout)
	engine.POST("/recover", s.recoverPassword)
	engine.GET("/auth/google", s.googleSignIn)
	engine.GET("/auth/callback", s.oauthCallback)

	s.engine = engine
	return s
}

func (s *Server) Run(port int) error {
	log.Infof("listening on :%d", port)
	return s.engine.Run(fmt.Sprintf(":%d", port))
}

func generateSalt() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("failed to generate hashing salt: %v", err)
	}
	return hex.EncodeToString(bytes)
}
