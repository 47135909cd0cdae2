package dto

// SuccessResponse is the body of every write that has nothing else to say.
type SuccessResponse struct {
	Success bool `json:"success"`
}

func OK() SuccessResponse { return SuccessResponse{Success: true} }

type UploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// ContactRequest is the public contact form.
type ContactRequest struct {
	Name    string `json:"name"    validate:"required,max=120"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"omitempty,max=40"`
	Company string `json:"company" validate:"omitempty,max=120"`
	Message string `json:"message" validate:"required,max=5000"`
}
