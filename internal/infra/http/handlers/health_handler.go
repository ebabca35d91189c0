package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

const Version = "1.0.0"

// QueueChecker is implemented by the RabbitMQ connection wrapper.
type QueueChecker interface {
	Healthy() bool
}

type HealthHandler struct {
	Queue          QueueChecker
	MailConfigured bool
	StartTime      time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(queue QueueChecker, mailConfigured bool) *HealthHandler {
	return &HealthHandler{
		Queue:          queue,
		MailConfigured: mailConfigured,
		StartTime:      time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// Check RabbitMQ
	if h.Queue != nil {
		if h.Queue.Healthy() {
			deps["rabbitmq"] = "healthy"
		} else {
			deps["rabbitmq"] = "unhealthy: connection closed"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	if h.MailConfigured {
		deps["smtp"] = "configured"
	} else {
		deps["smtp"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	w.Header().Set("Content-Type", "application/json")
	if status == "degraded" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	json.NewEncoder(w).Encode(response)
}
