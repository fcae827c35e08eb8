package util

import "errors"

var (
	ErrPermissionDenied      = errors.New("permission denied")
	ErrNoFeatureData         = errors.New("no feature data available, no predictions possible")
	ErrPredictionsWrite      = errors.New("failed to store predictions")
	ErrInvalidPredictionType = errors.New("invalid prediction type")
	ErrSessionNotFound       = errors.New("quiz session not found or expired")
	ErrAlertNotFound         = errors.New("alert not found")
	ErrAlertAlreadyDismissed = errors.New("alert already dismissed")
	ErrAssessmentNotFound    = errors.New("roadmap for assessment not found")
)
