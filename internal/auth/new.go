package auth

import (
	"calendar-assistant/pkg/log"
)

type handler struct {
	l   log.Logger
	svc *Service
}

// NewHandler creates the HTTP handler for the auth domain.
func NewHandler(l log.Logger, svc *Service) *handler {
	return &handler{l: l, svc: svc}
}
