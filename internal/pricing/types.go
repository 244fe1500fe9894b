package pricing

// FormatQuery holds the query parameters of GET /pricing/format.
type FormatQuery struct {
	Amount  *int64 `form:"amount" validate:"required"`
	Compact bool   `form:"compact"`
}

// FormatResponse is a display-ready VND amount.
type FormatResponse struct {
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
	Compact   bool   `json:"compact"`
}
