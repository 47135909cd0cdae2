package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

// CategoryRequest is the admin form payload. InternalID present means update;
// absent means create. Slug is only read on create.
type CategoryRequest struct {
	InternalID  string  `json:"_id"`
	Slug        string  `json:"id"          validate:"omitempty,max=60,slug"`
	Name        string  `json:"name"        validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=500"`
	Emoji       *string `json:"emoji"       validate:"omitempty,max=16"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CategoryResponse struct {
	InternalID  string `json:"_id"`
	Slug        string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryInfo is the display metadata of a product's category. Known is
// false when the slug matched nothing and the placeholder was used.
type CategoryInfo struct {
	Slug  string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Known bool   `json:"known"`
}
