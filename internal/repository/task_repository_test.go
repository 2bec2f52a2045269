package repository_test

import (
	"context"
	"testing"
	"time"

	"taskhub/internal/model"
	"taskhub/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func taskRow(id uuid.UUID, status string, version int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "status", "actions", "difficulty_level", "coins_reward",
		"reward_base", "reward_multiplier", "settings_version", "created_by",
		"version", "created_at", "updated_at",
	}).AddRow(
		id.String(), "Quarterly report", status, `[]`, 3, 45,
		15.0, 1.0, 2, uuid.New().String(),
		version, time.Now(), time.Now(),
	)
}

func TestTaskRepository_GetByID_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE id = .*`).
		WithArgs(taskID, 1).
		WillReturnRows(taskRow(taskID, model.StatusPending, 1))

	// Act
	task, err := taskRepo.GetByID(context.Background(), taskID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, taskID, task.ID)
	assert.Equal(t, model.StatusPending, task.Status)
	assert.Equal(t, 1, task.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetByID_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE id = .*`).
		WithArgs(taskID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	// Act
	_, err := taskRepo.GetByID(context.Background(), taskID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update_BumpsVersion(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	task := &model.Task{
		ID:      uuid.New(),
		Title:   "Quarterly report",
		Status:  model.StatusInProgress,
		Actions: model.ActionList{},
		Version: 3,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Update(context.Background(), task, 3)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 4, task.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update_VersionConflict(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	task := &model.Task{
		ID:      uuid.New(),
		Title:   "Quarterly report",
		Status:  model.StatusInProgress,
		Actions: model.ActionList{},
		Version: 2,
	}

	// The update matches no row because the stored version moved on.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	// The task still exists, so the failure is a concurrent edit.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "tasks"`).
		WithArgs(task.ID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	// Act
	err := taskRepo.Update(context.Background(), task, 2)

	// Assert
	assert.ErrorIs(t, err, repository.ErrVersionConflict)
	assert.Equal(t, 2, task.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	task := &model.Task{
		ID:      uuid.New(),
		Actions: model.ActionList{},
		Version: 1,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "tasks"`).
		WithArgs(task.ID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	// Act
	err := taskRepo.Update(context.Background(), task, 1)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks"`).
		WithArgs(taskID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Delete(context.Background(), taskID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
