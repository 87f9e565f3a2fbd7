package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/application/store"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
	"github.com/planify/backend/internal/integration/entrypoint/dto"
)

// TaskController handles task endpoints.
type TaskController struct {
	stores *store.Manager
}

// NewTaskController creates a new task controller instance.
func NewTaskController(stores *store.Manager) *TaskController {
	return &TaskController{stores: stores}
}

// List handles GET /tasks requests.
func (c *TaskController) List(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTaskResponses(st.Tasks()))
}

// Create handles POST /tasks requests.
func (c *TaskController) Create(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	task, err := st.AddTask(ctx.Request.Context(), store.AddTaskInput{
		Title:     req.Title,
		Priority:  entity.Priority(req.Priority),
		Date:      req.Date,
		TimeBlock: req.TimeBlock,
		Tags:      req.Tags,
	})
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// CreateBulk handles POST /tasks/bulk requests.
func (c *TaskController) CreateBulk(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	var req dto.BulkTasksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	drafts := make([]entity.TaskDraft, len(req.Drafts))
	for i, d := range req.Drafts {
		drafts[i] = entity.TaskDraft{
			Title:     d.Title,
			Priority:  entity.Priority(d.Priority),
			Date:      d.Date,
			TimeBlock: d.TimeBlock,
		}
	}

	tasks, err := st.AddTasksBulk(ctx.Request.Context(), drafts)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTaskResponses(tasks))
}

// Toggle handles POST /tasks/:id/toggle requests.
func (c *TaskController) Toggle(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrTaskNotFound)
		return
	}

	outcome, err := st.ToggleTask(ctx.Request.Context(), id)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}

// Update handles PATCH /tasks/:id requests.
func (c *TaskController) Update(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrTaskNotFound)
		return
	}

	var req dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx)
		return
	}

	patch := adapter.TaskPatch{
		Title:     req.Title,
		Date:      req.Date,
		TimeBlock: req.TimeBlock,
		Tags:      req.Tags,
	}
	if req.Priority != nil {
		priority := entity.Priority(*req.Priority)
		patch.Priority = &priority
	}

	outcome, err := st.UpdateTask(ctx.Request.Context(), id, patch)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}

// Delete handles DELETE /tasks/:id requests.
func (c *TaskController) Delete(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrTaskNotFound)
		return
	}

	outcome, err := st.DeleteTask(ctx.Request.Context(), id)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOutcomeResponse(outcome))
}

// FromNote handles POST /tasks/from-note/:noteId requests. The note's
// content becomes a task due today and the note is removed.
func (c *TaskController) FromNote(ctx *gin.Context) {
	st, ok := resolveStore(ctx, c.stores)
	if !ok {
		return
	}

	noteID, err := uuid.Parse(ctx.Param("noteId"))
	if err != nil {
		handleStoreError(ctx, domainerror.ErrNoteNotFound)
		return
	}

	task, err := st.ConvertNoteToTask(ctx.Request.Context(), noteID)
	if err != nil {
		handleStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}
