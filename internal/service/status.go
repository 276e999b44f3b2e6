package service

import (
	"context"

	"demoapps/internal/model"
)

const (
	// RootMessage is the fixed greeting served on the API root.
	RootMessage = "Hello FastAPI!"
	// StatusHealthy is the fixed health-check status.
	StatusHealthy = "healthy"
)

// StatusService defines the two read-only use cases of the API service.
type StatusService interface {
	// Root returns the root greeting.
	Root(ctx context.Context) model.Message

	// Health returns the liveness status of the process.
	Health(ctx context.Context) model.HealthStatus
}

type statusService struct{}

// NewStatusService constructs a new StatusService.
func NewStatusService() StatusService {
	return statusService{}
}

func (statusService) Root(context.Context) model.Message {
	return model.Message{Message: RootMessage}
}

// Health does not probe any dependency; the process being able to answer is the signal.
func (statusService) Health(context.Context) model.HealthStatus {
	return model.HealthStatus{Status: StatusHealthy}
}
