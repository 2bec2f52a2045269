package handler

import (
	"net/http"

	"taskhub/internal/model"
	"taskhub/internal/repository"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	repo repository.SettingsRepositoryInterface
}

func NewSettingsHandler(repo repository.SettingsRepositoryInterface) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

type SettingsRequest struct {
	TaskCompletionBase   float64 `json:"task_completion_base" binding:"required,gt=0"`
	ComplexityMultiplier float64 `json:"complexity_multiplier" binding:"required,gt=0"`
	MonthlyBonus         int     `json:"monthly_bonus" binding:"min=0"`
	DifficultyMin        int     `json:"difficulty_min" binding:"required,min=1"`
	DifficultyMax        int     `json:"difficulty_max" binding:"required,min=1"`
}

// Get returns the current settings revision.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.repo.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Update appends a new settings revision. Existing tasks keep the reward
// computed under the revision they were last edited against.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.DifficultyMin > req.DifficultyMax {
		c.JSON(http.StatusBadRequest, gin.H{"error": "difficulty_min must not exceed difficulty_max"})
		return
	}

	userID := currentUserID(c)
	rev := &model.SettingsRevision{
		TaskCompletionBase:   req.TaskCompletionBase,
		ComplexityMultiplier: req.ComplexityMultiplier,
		MonthlyBonus:         req.MonthlyBonus,
		DifficultyMin:        req.DifficultyMin,
		DifficultyMax:        req.DifficultyMax,
		CreatedBy:            &userID,
	}

	if err := h.repo.Append(c.Request.Context(), rev); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	c.JSON(http.StatusCreated, rev)
}
