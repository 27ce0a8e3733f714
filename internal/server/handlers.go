package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okan/focusly/internal/review"
	"github.com/okan/focusly/internal/store"
)

type createSessionRequest struct {
	StartTime *time.Time `json:"startTime" binding:"required"`
	EndTime   *time.Time `json:"endTime" binding:"required"`
	IsBreak   bool       `json:"isBreak"`
}

// handleCreateSession appends a focus session for the caller. Timestamps are
// taken as reported by the client; ordering is not re-validated here — the
// aggregation side clamps negative durations to zero.
func (s *Server) handleCreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startTime and endTime required"})
		return
	}

	session, err := s.store.CreateFocusSession(currentUserID(c), req.IsBreak, *req.StartTime, *req.EndTime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create session"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (s *Server) handleSessionStats(c *gin.Context) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	pomodoros, focusSeconds, err := s.store.GetDayStats(currentUserID(c), dayStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"totalPomodoros":    pomodoros,
		"totalFocusSeconds": focusSeconds,
	})
}

func (s *Server) handleReviewSummary(c *gin.Context) {
	userID := currentUserID(c)

	// A live session pointing at a missing user row is a data integrity edge
	// case, surfaced distinctly from unauthorized.
	if _, err := s.store.GetUser(userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load user"})
		return
	}

	summary, err := review.Compute(s.store, userID, s.now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

type createTaskRequest struct {
	Title     string     `json:"title" binding:"required"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}

	task, err := s.store.CreateTask(currentUserID(c), req.Title, req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create task"})
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) handleListTasks(c *gin.Context) {
	filter := store.TaskFilter{UserID: currentUserID(c)}
	if v, ok := c.GetQuery("completed"); ok {
		completed := v == "true" || v == "1"
		filter.Completed = &completed
	}

	tasks, err := s.store.ListTasks(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list tasks"})
		return
	}
	if tasks == nil {
		tasks = []store.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

type updateTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Title == nil && req.Completed == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	userID := currentUserID(c)
	if req.Title != nil {
		if err := s.store.UpdateTaskTitle(userID, id, *req.Title); err != nil {
			s.taskUpdateError(c, err)
			return
		}
	}
	if req.Completed != nil {
		if err := s.store.SetTaskCompleted(userID, id, *req.Completed); err != nil {
			s.taskUpdateError(c, err)
			return
		}
	}

	task, err := s.store.GetTask(userID, id)
	if err != nil {
		s.taskUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) taskUpdateError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "update task"})
}
