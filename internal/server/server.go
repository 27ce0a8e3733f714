// Package server exposes the HTTP JSON API: cookie-session authentication,
// focus-session recording, task CRUD, and the review summary.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okan/focusly/internal/config"
	"github.com/okan/focusly/internal/store"
)

const sessionCookie = "focusly_session"

type Server struct {
	store      *store.Store
	router     *gin.Engine
	sessionTTL time.Duration

	// now is the clock used for day boundaries; swapped out in tests.
	now func() time.Time
}

func New(s *store.Store, cfg *config.Config) *Server {
	router := gin.Default()

	srv := &Server{
		store:      s,
		router:     router,
		sessionTTL: cfg.SessionTTL(),
		now:        time.Now,
	}

	api := router.Group("/api")
	api.POST("/register", srv.handleRegister)
	api.POST("/login", srv.handleLogin)

	auth := api.Group("", srv.requireUser)
	auth.POST("/logout", srv.handleLogout)
	auth.POST("/pomodoro-sessions", srv.handleCreateSession)
	auth.GET("/pomodoro-sessions/stats", srv.handleSessionStats)
	auth.GET("/review/summary", srv.handleReviewSummary)
	auth.GET("/tasks", srv.handleListTasks)
	auth.POST("/tasks", srv.handleCreateTask)
	auth.PATCH("/tasks/:id", srv.handleUpdateTask)

	return srv
}

// Run starts the HTTP server on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// ServeHTTP exposes the router as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
