package pricing

import "storefront_backend/platform/currency"

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Format renders amount in dong, abbreviated when compact is set.
func (s *Service) Format(amount int64, compact bool) FormatResponse {
	formatted := currency.FormatVND(amount)
	if compact {
		formatted = currency.FormatCompactVND(amount)
	}

	return FormatResponse{
		Amount:    amount,
		Currency:  currency.Code(),
		Formatted: formatted,
		Compact:   compact,
	}
}
