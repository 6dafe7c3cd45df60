package generation

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"smart_performance/pkg/api/response"
	"smart_performance/pkg/core/generation"
	"smart_performance/pkg/core/input"
	"smart_performance/pkg/core/job"
	"smart_performance/pkg/core/prompt"
	"smart_performance/pkg/core/render"
	"smart_performance/pkg/platform/logger"

	"github.com/gin-gonic/gin"
)

// Handler exposes the three generation flows over HTTP, synchronously and as
// pollable jobs.
type Handler struct {
	gen     job.Generator
	tracker *job.Tracker
	log     *logger.Logger
}

func NewHandler(gen job.Generator, tracker *job.Tracker, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{gen: gen, tracker: tracker, log: log.With("handler", "generation")}
}

type GenerateRequest struct {
	Input string `json:"input"`
}

type GenerateResponse struct {
	Task    string `json:"task"`
	Text    string `json:"text"`
	Empty   bool   `json:"empty"`
	Display string `json:"display"`
}

type TaskInfo struct {
	Tag         string `json:"tag"`
	Title       string `json:"title"`
	PromptID    string `json:"prompt_id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
}

type StartJobResponse struct {
	JobID string `json:"job_id"`
}

type JobView struct {
	ID        string             `json:"id"`
	Task      string             `json:"task"`
	Status    string             `json:"status"`
	Text      string             `json:"text,omitempty"`
	Display   string             `json:"display,omitempty"`
	Error     *response.APIError `json:"error,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type RenderRequest struct {
	Markdown string `json:"markdown"`
	Title    string `json:"title"`
}

// ListTasks handles GET /api/tasks.
func (h *Handler) ListTasks(c *gin.Context) {
	templates := make(map[string]*prompt.PromptTemplate)
	for _, pt := range prompt.Get().ListByCategory(prompt.CategoryGeneration) {
		templates[pt.ID] = pt
	}

	tasks := generation.Tasks()
	out := make([]TaskInfo, 0, len(tasks))
	for _, t := range tasks {
		info := TaskInfo{Tag: t.String(), Title: t.Title(), PromptID: t.PromptID()}
		if pt, ok := templates[info.PromptID]; ok {
			info.Name = pt.Name
			info.Description = pt.Description
			info.Version = pt.Version
		}
		out = append(out, info)
	}
	response.RespondOK(c, gin.H{"tasks": out})
}

// Generate handles POST /api/generate/:task and waits for the model.
func (h *Handler) Generate(c *gin.Context) {
	task, text, ok := h.bindTaskInput(c)
	if !ok {
		return
	}

	out, err := h.gen.Generate(c.Request.Context(), task, text)
	if err != nil {
		h.respondGenerationError(c, task, err)
		return
	}

	response.RespondOK(c, GenerateResponse{
		Task:    task.String(),
		Text:    out,
		Empty:   out == "",
		Display: generation.Display(task, out, nil),
	})
}

// StartJob handles POST /api/jobs/:task.
func (h *Handler) StartJob(c *gin.Context) {
	task, text, ok := h.bindTaskInput(c)
	if !ok {
		return
	}

	j := h.tracker.Start(task, text)
	h.log.Info("job started", "job_id", j.ID, "task", task.String())
	c.JSON(http.StatusAccepted, StartJobResponse{JobID: j.ID})
}

// GetJob handles GET /api/jobs/:id.
func (h *Handler) GetJob(c *gin.Context) {
	j, err := h.tracker.Get(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusNotFound, "job_not_found", err)
		return
	}
	response.RespondOK(c, viewOf(j))
}

// ExportJob handles GET /api/jobs/:id/export?format=html|markdown.
func (h *Handler) ExportJob(c *gin.Context) {
	j, err := h.tracker.Get(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusNotFound, "job_not_found", err)
		return
	}
	if j.Status != job.StatusSucceeded {
		response.RespondError(c, http.StatusConflict, "job_not_succeeded", fmt.Errorf("job is %s", j.Status))
		return
	}

	content := generation.Display(j.Task, j.Text, nil)
	base := fmt.Sprintf("%s-%s", j.Task.String(), j.CreatedAt.Format("20060102-150405"))

	switch c.DefaultQuery("format", "html") {
	case "markdown", "md":
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.md"`, base))
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(content))
	case "html":
		doc, err := render.Document(render.TitleOr(content, j.Task.Title()), content)
		if err != nil {
			response.RespondError(c, http.StatusInternalServerError, "render_failed", err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.html"`, base))
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
	default:
		response.RespondError(c, http.StatusBadRequest, "unknown_format", fmt.Errorf("unknown format %q", c.Query("format")))
	}
}

// Render handles POST /api/render and returns a printable document.
func (h *Handler) Render(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if input.Empty(req.Markdown) {
		response.RespondError(c, http.StatusBadRequest, "empty_input", generation.ErrEmptyInput)
		return
	}

	doc, err := render.Document(req.Title, req.Markdown)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "render_failed", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

func (h *Handler) bindTaskInput(c *gin.Context) (generation.Task, string, bool) {
	task, err := generation.ParseTask(c.Param("task"))
	if err != nil {
		response.RespondError(c, http.StatusNotFound, "unknown_task", err)
		return 0, "", false
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return 0, "", false
	}
	if input.Empty(req.Input) {
		response.RespondError(c, http.StatusBadRequest, "empty_input", generation.ErrEmptyInput)
		return 0, "", false
	}
	return task, input.Normalize(req.Input), true
}

func (h *Handler) respondGenerationError(c *gin.Context, task generation.Task, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("generation request failed", "task", task.String(), "error", err)
	}
	response.RespondErrorDisplay(c, status, code, err, generation.ErrorText(task))
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, generation.ErrMissingCredential):
		return http.StatusPreconditionFailed, "missing_credential"
	case errors.Is(err, generation.ErrEmptyInput):
		return http.StatusBadRequest, "empty_input"
	case errors.Is(err, generation.ErrUnknownTask):
		return http.StatusNotFound, "unknown_task"
	case errors.Is(err, generation.ErrNoProvider):
		return http.StatusServiceUnavailable, "no_provider"
	default:
		return http.StatusBadGateway, "generation_failed"
	}
}

func viewOf(j job.Job) JobView {
	v := JobView{
		ID:        j.ID,
		Task:      j.Task.String(),
		Status:    string(j.Status),
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
	switch j.Status {
	case job.StatusSucceeded:
		v.Text = j.Text
		v.Display = generation.Display(j.Task, j.Text, nil)
	case job.StatusFailed:
		_, code := classify(j.Err)
		v.Display = generation.ErrorText(j.Task)
		v.Error = &response.APIError{Message: j.Err.Error(), Code: code, Display: v.Display}
	}
	return v
}
