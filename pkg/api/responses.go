package api

import (
	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/pkg/database"
	"github.com/moim-labs/moim/pkg/queue"
	"github.com/moim-labs/moim/pkg/services"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck is one component's health inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadyResponse is returned by GET /ready.
type ReadyResponse struct {
	Status            string                    `json:"status"`
	Database          *database.HealthStatus    `json:"database,omitempty"`
	WorkerPool        *queue.PoolHealth         `json:"worker_pool,omitempty"`
	ActiveConnections int                       `json:"active_connections"`
	Warnings          []*services.SystemWarning `json:"warnings,omitempty"`
}

// ChatSessionListResponse is returned by GET /api/chat/sessions.
type ChatSessionListResponse struct {
	ChatSessions []*ent.ChatSession `json:"chat_sessions"`
	TotalCount   int                `json:"total_count"`
}
