package service

import "errors"

var (
	ErrTopicRequired         = errors.New("topic is required")
	ErrMissingField          = errors.New("missing required field")
	ErrInvalidSession        = errors.New("invalid session payload")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrGenerationUnavailable = errors.New("question generation is unavailable")
)
