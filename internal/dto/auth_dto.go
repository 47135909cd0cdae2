package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SessionUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LoginResponse struct {
	Success   bool        `json:"success"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      SessionUser `json:"user"`
}

type SessionResponse struct {
	User      SessionUser `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}
