package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/config"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/generator"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

type WorkoutHandler struct {
	gen *generator.Generator
	cfg *config.Config
}

func NewWorkoutHandler(gen *generator.Generator, cfg *config.Config) *WorkoutHandler {
	return &WorkoutHandler{gen: gen, cfg: cfg}
}

// POST /api/v1/workouts/generate
func (h *WorkoutHandler) Generate(c *gin.Context) {
	var input generator.GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if input.Goal == "" {
		input.Goal = repository.Goal(h.cfg.DefaultGoal)
	}
	if input.TargetDuration == 0 {
		input.TargetDuration = h.cfg.DefaultDuration
	}

	result, err := h.gen.Generate(c.Request.Context(), input)
	switch {
	case errors.Is(err, generator.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, generator.ErrNoTemplate), errors.Is(err, generator.ErrNoScripts):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "workout generation failed"})
	default:
		c.JSON(http.StatusCreated, result)
	}
}

type SessionHandler struct {
	repo repository.SessionRepository
}

func NewSessionHandler(repo repository.SessionRepository) *SessionHandler {
	return &SessionHandler{repo: repo}
}

// GET /api/v1/sessions
func (h *SessionHandler) List(c *gin.Context) {
	var filter repository.SessionFilter
	if d := c.Query("discipline"); d != "" {
		filter.Discipline = repository.Discipline(d)
		if !filter.Discipline.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discipline"})
			return
		}
	}
	if g := c.Query("goal"); g != "" {
		filter.Goal = repository.Goal(g)
		if !filter.Goal.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal"})
			return
		}
	}
	switch c.Query("is_used") {
	case "":
	case "true":
		used := true
		filter.IsUsed = &used
	case "false":
		used := false
		filter.IsUsed = &used
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_used must be true or false"})
		return
	}

	sessions, err := h.repo.ListSessions(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sessions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	session, err := h.repo.GetSession(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	scripts, err := h.repo.ListSessionScripts(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session scripts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "scripts": scripts})
}

type updateSessionRequest struct {
	IsUsed *bool   `json:"is_used"`
	Notes  *string `json:"notes"`
}

// PATCH /api/v1/sessions/:id
func (h *SessionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var req updateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.IsUsed == nil && req.Notes == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	err = h.repo.UpdateSessionUsage(c.Request.Context(), repository.UpdateSessionUsageInput{
		SessionID: id,
		IsUsed:    req.IsUsed,
		Notes:     req.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

type TemplateHandler struct {
	repo repository.ContentRepository
}

func NewTemplateHandler(repo repository.ContentRepository) *TemplateHandler {
	return &TemplateHandler{repo: repo}
}

type templateStepView struct {
	SequenceOrder int      `json:"sequence_order"`
	Category      string   `json:"category"`
	Alternatives  []string `json:"alternatives,omitempty"`
	Required      bool     `json:"required"`
	Insertion     string   `json:"insertion,omitempty"`
}

// GET /api/v1/templates/preview?discipline=...
func (h *TemplateHandler) Preview(c *gin.Context) {
	d := repository.Discipline(c.Query("discipline"))
	if !d.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discipline"})
		return
	}

	steps, err := h.repo.ListActiveTemplateSteps(c.Request.Context(), d)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load template"})
		return
	}
	categories, err := h.repo.ListActiveCategories(c.Request.Context(), d)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load categories"})
		return
	}

	names := make(map[uuid.UUID]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.DisplayName
	}
	name := func(id uuid.UUID) string {
		if n, ok := names[id]; ok {
			return n
		}
		return "unknown"
	}

	views := make([]templateStepView, len(steps))
	for i, step := range steps {
		v := templateStepView{
			SequenceOrder: step.SequenceOrder,
			Category:      name(step.PrimaryCategoryID),
			Required:      step.Required,
		}
		for _, altID := range step.AlternativeCategoryIDs {
			v.Alternatives = append(v.Alternatives, name(altID))
		}
		if step.Insertion != repository.InsertionNone {
			v.Insertion = string(step.Insertion)
		}
		views[i] = v
	}
	c.JSON(http.StatusOK, gin.H{"discipline": d, "steps": views})
}

// GET /healthz
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
