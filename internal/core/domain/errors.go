package domain

import "errors"

var (
	ErrMissingAPIKey   = errors.New("api key is not configured")
	ErrEmptyChannelID  = errors.New("channel id cannot be empty")
	ErrChannelNotFound = errors.New("channel not found")
)
