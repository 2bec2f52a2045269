// Package reward computes the coin reward for a task from its difficulty
// level and the reward policy in force at edit time. The result is persisted
// on the task and never recomputed when the policy later changes.
package reward

import (
	"math"

	"taskhub/internal/model"
)

// Calc returns round(base * difficulty * multiplier).
func Calc(base float64, difficulty int, multiplier float64) int {
	return int(math.Round(base * float64(difficulty) * multiplier))
}

// ForTask computes the reward for a difficulty level under the given
// settings revision.
func ForTask(settings model.SettingsRevision, difficulty int) int {
	return Calc(settings.TaskCompletionBase, difficulty, settings.ComplexityMultiplier)
}
