package calendar

import (
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
)

type handler struct {
	l      log.Logger
	client *gcalendar.Client
}

// NewHandler creates the HTTP handler for the calendar domain.
func NewHandler(l log.Logger, client *gcalendar.Client) *handler {
	return &handler{l: l, client: client}
}
