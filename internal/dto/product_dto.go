package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProductPayload is one product as sent by the admin. A zero ID asks the
// server to assign a timestamp id.
type ProductPayload struct {
	InternalID          string   `json:"_id,omitempty"`
	ID                  int64    `json:"id"`
	Name                string   `json:"name"                validate:"required,max=150"`
	Images              []string `json:"images"              validate:"required,min=1,dive,required"`
	Description         string   `json:"description"         validate:"required,max=300"`
	DetailedDescription string   `json:"detailedDescription" validate:"required"`
	Features            []string `json:"features"`
	Category            string   `json:"category"            validate:"required"`
}

// ReplaceProductsRequest carries the complete desired product set. When
// Categories is non-empty the category set is replaced as well.
type ReplaceProductsRequest struct {
	Products   []ProductPayload  `json:"products"   validate:"dive"`
	Categories []CategoryRequest `json:"categories" validate:"dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	InternalID          string       `json:"_id"`
	ID                  int64        `json:"id"`
	Name                string       `json:"name"`
	Images              []string     `json:"images"`
	Description         string       `json:"description"`
	DetailedDescription string       `json:"detailedDescription"`
	Features            []string     `json:"features"`
	Category            string       `json:"category"`
	CategoryInfo        CategoryInfo `json:"categoryInfo"`
}

// CatalogResponse is the GET /products payload.
type CatalogResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Products   []ProductResponse  `json:"products"`
}
