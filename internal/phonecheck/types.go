package phonecheck

import "storefront_backend/platform/phone"

const maxBatchSize = 500

// NormalizeRequest is the body of POST /phone/normalize.
type NormalizeRequest struct {
	Phone string `json:"phone" validate:"required,max=64"`
}

// VerifyRequest is the body of POST /phone/verify. Only Vietnamese mobile numbers pass.
type VerifyRequest struct {
	Phone string `json:"phone" validate:"required,vnphone,max=64"`
}

// BatchRequest is the body of POST /phone/normalize/batch.
type BatchRequest struct {
	Phones []string `json:"phones" validate:"required,min=1,max=500,dive,max=64"`
}

// ValidateQuery holds the query parameters of GET /phone/validate.
type ValidateQuery struct {
	Phone string `form:"phone"`
}

// ValidateResponse reports the normalized form and validity of a single number.
type ValidateResponse struct {
	Phone      string `json:"phone"`
	Normalized string `json:"normalized"`
	Valid      bool   `json:"valid"`
}

// BatchResponse keeps results in request order.
type BatchResponse struct {
	Results    []phone.Details `json:"results"`
	ValidCount int             `json:"validCount"`
}
