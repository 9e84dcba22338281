package types

import "github.com/go-playground/validator/v10"

// RecommendRequest is the JSON body for POST /api/recommend, used by callers
// that have already extracted plain text from a resume document.
// An empty resume_text is valid and yields an empty profile, so the field
// carries no required constraint.
type RecommendRequest struct {
	ResumeText string `json:"resume_text"`
	TopN       int    `json:"top_n,omitempty" validate:"omitempty,min=1,max=100"`
}

// TokenRequest is the JSON body for POST /auth/token.
type TokenRequest struct {
	Password string `json:"password" validate:"required"`
}

// Validate validates the RecommendRequest using the validator.
func (r *RecommendRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TokenRequest using the validator.
func (r *TokenRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
