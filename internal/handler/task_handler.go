package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"taskhub/internal/model"
	"taskhub/internal/repository"
	"taskhub/internal/reward"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskRepo     repository.TaskRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	templateRepo repository.TemplateRepositoryInterface
	settingsRepo repository.SettingsRepositoryInterface
	coinRepo     repository.CoinRepositoryInterface
	notifRepo    repository.NotificationRepositoryInterface
	activityRepo repository.ActivityRepositoryInterface
}

func NewTaskHandler(
	taskRepo repository.TaskRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	templateRepo repository.TemplateRepositoryInterface,
	settingsRepo repository.SettingsRepositoryInterface,
	coinRepo repository.CoinRepositoryInterface,
	notifRepo repository.NotificationRepositoryInterface,
	activityRepo repository.ActivityRepositoryInterface,
) *TaskHandler {
	return &TaskHandler{
		taskRepo:     taskRepo,
		userRepo:     userRepo,
		templateRepo: templateRepo,
		settingsRepo: settingsRepo,
		coinRepo:     coinRepo,
		notifRepo:    notifRepo,
		activityRepo: activityRepo,
	}
}

type ActionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required"`
}

type TaskRequest struct {
	Title           string          `json:"title" binding:"required"`
	Description     string          `json:"description"`
	ProjectID       *string         `json:"project_id"`
	AssignedTo      *string         `json:"assigned_to"`
	DueDate         *time.Time      `json:"due_date"`
	DifficultyLevel int             `json:"difficulty_level" binding:"required"`
	Actions         []ActionRequest `json:"actions"`
	TemplateID      *string         `json:"template_id"`
}

type TaskUpdateRequest struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	ProjectID       *string    `json:"project_id"`
	AssignedTo      *string    `json:"assigned_to"`
	DueDate         *time.Time `json:"due_date"`
	DifficultyLevel int        `json:"difficulty_level" binding:"required"`

	// ExpectedVersion is the task version the client last saw. A stale
	// value is rejected with 409 instead of silently overwriting someone
	// else's edit.
	ExpectedVersion int `json:"expected_version" binding:"required,min=1"`
}

type ActionCompleteRequest struct {
	Payload model.ActionPayload `json:"payload"`
}

type ApplyTemplateRequest struct {
	TemplateID string `json:"template_id" binding:"required,uuid"`
}

// TaskResponse is the task enriched with checklist progress and resolved
// user names. Broken user references render as a placeholder rather than
// failing the request.
type TaskResponse struct {
	model.Task
	Progress     model.Progress `json:"progress"`
	AssigneeName *string        `json:"assignee_name,omitempty"`
	CreatorName  string         `json:"creator_name"`
}

const unknownUserName = "Unknown user"

func (h *TaskHandler) taskResponse(c *gin.Context, task *model.Task) TaskResponse {
	resp := TaskResponse{
		Task:        *task,
		Progress:    task.Progress(),
		CreatorName: unknownUserName,
	}

	if creator, err := h.userRepo.GetByID(c.Request.Context(), task.CreatedBy); err == nil && creator != nil {
		resp.CreatorName = creator.Name
	}
	if task.AssignedTo != nil {
		name := unknownUserName
		if assignee, err := h.userRepo.GetByID(c.Request.Context(), *task.AssignedTo); err == nil && assignee != nil {
			name = assignee.Name
		}
		resp.AssigneeName = &name
	}
	return resp
}

// recordActivity appends an audit entry; failures are logged and never fail
// the primary operation.
func (h *TaskHandler) recordActivity(c *gin.Context, taskID, actorID uuid.UUID, action, detail string) {
	entry := &model.ActivityEntry{
		TaskID:  taskID,
		ActorID: actorID,
		Action:  action,
		Detail:  detail,
	}
	if err := h.activityRepo.Append(c.Request.Context(), entry); err != nil {
		log.Printf("record activity for task %s: %v", taskID, err)
	}
}

// notify writes a notification; failures are logged and never fail the
// primary operation.
func (h *TaskHandler) notify(c *gin.Context, userID uuid.UUID, kind, title, body string, taskID uuid.UUID) {
	n := &model.Notification{
		UserID: userID,
		Kind:   kind,
		Title:  title,
		Body:   body,
		TaskID: &taskID,
	}
	if err := h.notifRepo.Create(c.Request.Context(), n); err != nil {
		log.Printf("notify user %s: %v", userID, err)
	}
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Create creates a new task. The coin reward is computed here from the
// current settings revision and stored on the task together with the inputs
// it was computed from; later settings changes never touch it.
func (h *TaskHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	settings, err := h.settingsRepo.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}
	if !settings.DifficultyInRange(req.DifficultyLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(
			"Difficulty level must be between %d and %d", settings.DifficultyMin, settings.DifficultyMax)})
		return
	}

	projectID, err := parseOptionalUUID(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}
	assignedTo, err := parseOptionalUUID(req.AssignedTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignee ID format"})
		return
	}

	actions := model.ActionList{}
	for _, a := range req.Actions {
		if !model.ValidActionType(a.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid action type %q", a.Type)})
			return
		}
		actions = append(actions, model.Action{
			ID:          uuid.New(),
			Title:       a.Title,
			Description: a.Description,
			Type:        a.Type,
		})
	}

	if req.TemplateID != nil && *req.TemplateID != "" {
		templateID, err := uuid.Parse(*req.TemplateID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID format"})
			return
		}
		tmpl, err := h.templateRepo.GetByID(c.Request.Context(), templateID)
		if err != nil {
			if errors.Is(err, repository.ErrTemplateNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve template"})
			return
		}
		actions = append(actions, tmpl.Instantiate()...)
	}

	task := &model.Task{
		ProjectID:        projectID,
		Title:            req.Title,
		Description:      req.Description,
		Status:           model.StatusPending,
		Actions:          actions,
		DifficultyLevel:  req.DifficultyLevel,
		CoinsReward:      reward.ForTask(settings, req.DifficultyLevel),
		RewardBase:       settings.TaskCompletionBase,
		RewardMultiplier: settings.ComplexityMultiplier,
		SettingsVersion:  settings.Version,
		AssignedTo:       assignedTo,
		CreatedBy:        userID,
		Version:          1,
		DueDate:          req.DueDate,
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	h.recordActivity(c, task.ID, userID, model.ActivityCreated, "")
	if task.AssignedTo != nil && *task.AssignedTo != userID {
		h.notify(c, *task.AssignedTo, model.NotifyTaskAssigned,
			"New task assigned", fmt.Sprintf("You were assigned %q", task.Title), task.ID)
	}

	c.JSON(http.StatusCreated, h.taskResponse(c, task))
}

// GetByID retrieves a task by ID
func (h *TaskHandler) GetByID(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.taskResponse(c, task))
}

// List retrieves tasks, optionally filtered by project, assignee or status
func (h *TaskHandler) List(c *gin.Context) {
	var filter repository.TaskFilter

	if p := c.Query("project_id"); p != "" {
		id, err := uuid.Parse(p)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
			return
		}
		filter.ProjectID = &id
	}
	if a := c.Query("assigned_to"); a != "" {
		id, err := uuid.Parse(a)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignee ID format"})
			return
		}
		filter.AssignedTo = &id
	}
	if c.Query("mine") == "true" {
		id := currentUserID(c)
		filter.AssignedTo = &id
	}
	if s := c.Query("status"); s != "" {
		if !model.ValidStatus(s) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		filter.Status = s
	}

	tasks, err := h.taskRepo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, h.taskResponse(c, &tasks[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// Update edits task fields. A changed difficulty recomputes the reward from
// the settings revision current right now; an unchanged difficulty keeps the
// stored snapshot untouched.
func (h *TaskHandler) Update(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	projectID, err := parseOptionalUUID(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}
	assignedTo, err := parseOptionalUUID(req.AssignedTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignee ID format"})
		return
	}

	if req.DifficultyLevel != task.DifficultyLevel {
		settings, err := h.settingsRepo.Current(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
			return
		}
		if !settings.DifficultyInRange(req.DifficultyLevel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(
				"Difficulty level must be between %d and %d", settings.DifficultyMin, settings.DifficultyMax)})
			return
		}
		task.DifficultyLevel = req.DifficultyLevel
		task.CoinsReward = reward.ForTask(settings, req.DifficultyLevel)
		task.RewardBase = settings.TaskCompletionBase
		task.RewardMultiplier = settings.ComplexityMultiplier
		task.SettingsVersion = settings.Version
	}

	previousAssignee := task.AssignedTo
	task.Title = req.Title
	task.Description = req.Description
	task.ProjectID = projectID
	task.AssignedTo = assignedTo
	task.DueDate = req.DueDate

	if !h.saveTask(c, task, req.ExpectedVersion) {
		return
	}

	h.recordActivity(c, task.ID, currentUserID(c), model.ActivityUpdated, "")
	if task.AssignedTo != nil &&
		(previousAssignee == nil || *previousAssignee != *task.AssignedTo) &&
		*task.AssignedTo != currentUserID(c) {
		h.notify(c, *task.AssignedTo, model.NotifyTaskAssigned,
			"New task assigned", fmt.Sprintf("You were assigned %q", task.Title), task.ID)
	}

	c.JSON(http.StatusOK, h.taskResponse(c, task))
}

// Delete removes a task
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// Start moves a pending task to in_progress.
func (h *TaskHandler) Start(c *gin.Context) {
	h.transition(c, model.StatusInProgress, model.ActivityStarted, nil)
}

// Submit moves a task to waiting_approval once every action is complete.
// Only the assignee (or a manager/admin) may submit.
func (h *TaskHandler) Submit(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	userID := currentUserID(c)
	role := currentUserRole(c)
	isAssignee := task.AssignedTo != nil && *task.AssignedTo == userID
	if !isAssignee && role != model.RoleAdmin && role != model.RoleManager {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the assignee can submit this task"})
		return
	}

	expectedVersion := task.Version
	if err := task.Transition(model.StatusWaitingApproval); err != nil {
		h.transitionError(c, err)
		return
	}
	if !h.saveTask(c, task, expectedVersion) {
		return
	}

	h.recordActivity(c, task.ID, userID, model.ActivitySubmitted, "")
	if task.CreatedBy != userID {
		h.notify(c, task.CreatedBy, model.NotifyTaskSubmitted,
			"Task awaiting approval", fmt.Sprintf("%q was submitted for approval", task.Title), task.ID)
	}

	c.JSON(http.StatusOK, h.taskResponse(c, task))
}

// Approve completes a waiting_approval task, stamps completed_at and credits
// the assignee's coin balance through the ledger. Admin only (enforced at the
// route level).
func (h *TaskHandler) Approve(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	expectedVersion := task.Version
	if err := task.Transition(model.StatusCompleted); err != nil {
		h.transitionError(c, err)
		return
	}
	now := time.Now()
	task.CompletedAt = &now

	if !h.saveTask(c, task, expectedVersion) {
		return
	}

	userID := currentUserID(c)
	h.recordActivity(c, task.ID, userID, model.ActivityApproved,
		fmt.Sprintf("%d coins awarded", task.CoinsReward))

	if task.AssignedTo != nil && task.CoinsReward > 0 {
		if err := h.coinRepo.Credit(c.Request.Context(), *task.AssignedTo, task.CoinsReward,
			&task.ID, model.CoinReasonTaskCompleted); err != nil {
			// The task is already completed; the missed credit is logged
			// rather than rolling the approval back.
			log.Printf("credit %d coins to %s for task %s: %v", task.CoinsReward, *task.AssignedTo, task.ID, err)
		}
	}
	if task.AssignedTo != nil {
		h.notify(c, *task.AssignedTo, model.NotifyTaskApproved,
			"Task approved", fmt.Sprintf("%q was approved, %d coins earned", task.Title, task.CoinsReward), task.ID)
	}

	c.JSON(http.StatusOK, h.taskResponse(c, task))
}

// Revert sends a waiting_approval task back to pending. Admin only.
func (h *TaskHandler) Revert(c *gin.Context) {
	h.transition(c, model.StatusPending, model.ActivityReverted, func(task *model.Task) {
		if task.AssignedTo != nil {
			h.notify(c, *task.AssignedTo, model.NotifyTaskReverted,
				"Task sent back", fmt.Sprintf("%q needs more work", task.Title), task.ID)
		}
	})
}

// Block marks a task as blocked; blocked is terminal.
func (h *TaskHandler) Block(c *gin.Context) {
	h.transition(c, model.StatusBlocked, model.ActivityBlocked, func(task *model.Task) {
		if task.AssignedTo != nil {
			h.notify(c, *task.AssignedTo, model.NotifyTaskBlocked,
				"Task blocked", fmt.Sprintf("%q was blocked", task.Title), task.ID)
		}
	})
}

// transition loads the task, applies the status change and saves it,
// recording activity and running the optional side effect on success.
func (h *TaskHandler) transition(c *gin.Context, to, activity string, after func(*model.Task)) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	expectedVersion := task.Version
	if err := task.Transition(to); err != nil {
		h.transitionError(c, err)
		return
	}
	if !h.saveTask(c, task, expectedVersion) {
		return
	}

	h.recordActivity(c, task.ID, currentUserID(c), activity, "")
	if after != nil {
		after(task)
	}

	c.JSON(http.StatusOK, h.taskResponse(c, task))
}

// CompleteAction marks a single checklist action as done, merging in its
// typed payload. Rejected while the task is waiting for approval or already
// completed.
func (h *TaskHandler) CompleteAction(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	actionID, err := uuid.Parse(c.Param("action_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action ID format"})
		return
	}

	var req ActionCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID := currentUserID(c)
	expectedVersion := task.Version
	if err := task.CompleteAction(actionID, userID, req.Payload, time.Now()); err != nil {
		h.actionError(c, err)
		return
	}
	if !h.saveTask(c, task, expectedVersion) {
		return
	}

	h.recordActivity(c, task.ID, userID, model.ActivityActionCompleted, actionID.String())
	c.JSON(http.StatusOK, h.taskResponse(c, task))
}

// UncompleteAction reverses a completed action in the same status window.
func (h *TaskHandler) UncompleteAction(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	actionID, err := uuid.Parse(c.Param("action_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action ID format"})
		return
	}

	expectedVersion := task.Version
	if err := task.UncompleteAction(actionID); err != nil {
		h.actionError(c, err)
		return
	}
	if !h.saveTask(c, task, expectedVersion) {
		return
	}

	h.recordActivity(c, task.ID, currentUserID(c), model.ActivityActionUncompleted, actionID.String())
	c.JSON(http.StatusOK, h.taskResponse(c, task))
}

// AddAction appends a new action to the checklist.
func (h *TaskHandler) AddAction(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !model.ValidActionType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid action type %q", req.Type)})
		return
	}
	if task.Status == model.StatusWaitingApproval || task.Status == model.StatusCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "Actions cannot be modified in the current status"})
		return
	}

	expectedVersion := task.Version
	task.Actions = append(task.Actions, model.Action{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
	})
	if !h.saveTask(c, task, expectedVersion) {
		return
	}

	h.recordActivity(c, task.ID, currentUserID(c), model.ActivityUpdated, "action added")
	c.JSON(http.StatusOK, h.taskResponse(c, task))
}

// RemoveAction deletes an action from the checklist.
func (h *TaskHandler) RemoveAction(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	actionID, err := uuid.Parse(c.Param("action_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action ID format"})
		return
	}
	if task.Status == model.StatusWaitingApproval || task.Status == model.StatusCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "Actions cannot be modified in the current status"})
		return
	}

	found := false
	kept := task.Actions[:0]
	for _, a := range task.Actions {
		if a.ID == actionID {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Action not found"})
		return
	}

	expectedVersion := task.Version
	task.Actions = kept
	if !h.saveTask(c, task, expectedVersion) {
		return
	}

	h.recordActivity(c, task.ID, currentUserID(c), model.ActivityUpdated, "action removed")
	c.JSON(http.StatusOK, h.taskResponse(c, task))
}

// ApplyTemplate copies a template's elements into the task as fresh,
// incomplete actions. Applying the same template twice yields independent
// duplicates; the template itself is never modified.
func (h *TaskHandler) ApplyTemplate(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}
	if task.Status == model.StatusWaitingApproval || task.Status == model.StatusCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "Actions cannot be modified in the current status"})
		return
	}

	var req ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	templateID, _ := uuid.Parse(req.TemplateID)
	tmpl, err := h.templateRepo.GetByID(c.Request.Context(), templateID)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve template"})
		return
	}

	expectedVersion := task.Version
	task.Actions = append(task.Actions, tmpl.Instantiate()...)
	if !h.saveTask(c, task, expectedVersion) {
		return
	}

	h.recordActivity(c, task.ID, currentUserID(c), model.ActivityTemplateApplied, tmpl.Name)
	c.JSON(http.StatusOK, h.taskResponse(c, task))
}

// Activity lists the audit trail of a task, newest first.
func (h *TaskHandler) Activity(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	entries, err := h.activityRepo.ListByTask(c.Request.Context(), task.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activity"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// loadTask parses the :id param and fetches the task, writing the error
// response itself when something is wrong.
func (h *TaskHandler) loadTask(c *gin.Context) (*model.Task, bool) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return nil, false
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return nil, false
	}
	return task, true
}

// saveTask persists the task with its optimistic-concurrency check, writing
// the error response on failure.
func (h *TaskHandler) saveTask(c *gin.Context, task *model.Task, expectedVersion int) bool {
	if err := h.taskRepo.Update(c.Request.Context(), task, expectedVersion); err != nil {
		switch {
		case errors.Is(err, repository.ErrVersionConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Task was modified by someone else, reload and retry"})
		case errors.Is(err, repository.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		}
		return false
	}
	return true
}

func (h *TaskHandler) transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrChecklistIncomplete):
		c.JSON(http.StatusConflict, gin.H{"error": "All actions must be completed before submitting"})
	case errors.Is(err, model.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
	}
}

func (h *TaskHandler) actionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrActionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Action not found"})
	case errors.Is(err, model.ErrActionsLocked):
		c.JSON(http.StatusConflict, gin.H{"error": "Actions cannot be modified in the current status"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
