// Package common defines shared constants and sentinel errors used across
// Meetly components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrUnknownPlan = errors.New("unknown plan tier")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Scheduling policy rejections.
	ErrBasePlanLimit    = errors.New("base plan meeting limit reached")
	ErrPremiumPlanLimit = errors.New("premium plan meeting limit reached")
	ErrSlotTaken        = errors.New("conflicting date and time")

	// Export errors.
	ErrNothingToExport = errors.New("no meetings to export")
)
