package model

import (
	"time"

	"calendar-assistant/pkg/gcalendar"
)

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// UserInfo is the Google account identity attached to a session.
type UserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session is an authenticated user session. The credential it carries is
// the OAuth token material handed to the calendar client on each request.
type Session struct {
	ID         string
	User       UserInfo
	Credential gcalendar.Credential
	CreatedAt  time.Time
}
