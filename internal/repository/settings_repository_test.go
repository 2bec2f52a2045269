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

func TestSettingsRepository_Current_DefaultsWhenEmpty(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	settingsRepo := repository.NewSettingsRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "settings_revisions" ORDER BY version DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	// Act
	settings, err := settingsRepo.Current(context.Background())

	// Assert: no saved revision falls back to the built-in version 0
	assert.NoError(t, err)
	assert.Equal(t, 0, settings.Version)
	assert.Equal(t, model.DefaultSettings(), settings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_Current_LatestRevision(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	settingsRepo := repository.NewSettingsRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "settings_revisions" ORDER BY version DESC`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "version", "task_completion_base", "complexity_multiplier",
			"monthly_bonus", "difficulty_min", "difficulty_max", "created_at",
		}).AddRow(uuid.New().String(), 4, 12.5, 1.2, 100, 2, 9, time.Now()))

	// Act
	settings, err := settingsRepo.Current(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 4, settings.Version)
	assert.Equal(t, 12.5, settings.TaskCompletionBase)
	assert.Equal(t, 2, settings.DifficultyMin)
	assert.Equal(t, 9, settings.DifficultyMax)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_Append_BumpsVersion(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	settingsRepo := repository.NewSettingsRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "settings_revisions" ORDER BY version DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "version"}).
			AddRow(uuid.New().String(), 3))
	mock.ExpectQuery(`INSERT INTO "settings_revisions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	rev := &model.SettingsRevision{
		TaskCompletionBase:   20,
		ComplexityMultiplier: 1.5,
		DifficultyMin:        1,
		DifficultyMax:        10,
	}

	// Act
	err := settingsRepo.Append(context.Background(), rev)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 4, rev.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCoinRepository_Credit(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	coinRepo := repository.NewCoinRepository(gormDB)

	userID := uuid.New()
	taskID := uuid.New()

	// Balance bump and ledger append share one transaction.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "coin_transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	// Act
	err := coinRepo.Credit(context.Background(), userID, 75, &taskID, model.CoinReasonTaskCompleted)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCoinRepository_Credit_UnknownUserRollsBack(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	coinRepo := repository.NewCoinRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	// Act
	err := coinRepo.Credit(context.Background(), uuid.New(), 75, nil, model.CoinReasonTaskCompleted)

	// Assert
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
