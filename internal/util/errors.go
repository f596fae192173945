package util

import "errors"

var (
	ErrModuleNotFound        = errors.New("module not found")
	ErrDayNotFound           = errors.New("day not found")
	ErrInvalidDay            = errors.New("day out of range")
	ErrGoalNotFound          = errors.New("goal not found")
	ErrEmptyGoalText         = errors.New("goal text must not be empty")
	ErrTooManyActiveJourneys = errors.New("too many active journeys (max 5)")
	ErrInvalidTheme          = errors.New("invalid theme")
	ErrInvalidReminderTime   = errors.New("reminder time must be HH:mm")
	ErrInvalidImportFile     = errors.New("invalid import file")
	ErrUnsupportedVersion    = errors.New("unsupported export version")
	ErrRevisionMismatch      = errors.New("state revision mismatch")

	ErrDayLocked         = errors.New("day not yet unlocked")
	ErrComeBackTomorrow  = errors.New("one lesson per day, come back tomorrow")
	ErrSessionNotFound   = errors.New("wizard session not found")
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrConfirmRequired   = errors.New("explicit confirmation required")
	ErrNothingToSkip     = errors.New("next day is not time locked")

	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidPasscode  = errors.New("invalid passcode")
	ErrAuthDisabled     = errors.New("auth is disabled")
)
