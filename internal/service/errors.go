package service

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthorized")
	ErrNotFound        = errors.New("profile not found")
	ErrNoSubscription  = errors.New("no subscription found")
	ErrAudioTooLarge   = errors.New("audio file too large")
	ErrUpstream        = errors.New("upstream service failed")
)
