package pricing

import (
	"storefront_backend/platform/apperr"
	"storefront_backend/platform/httpkit"
	"storefront_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgInvalidRequest = "invalid request"

// Handler exposes the price formatting endpoint.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Format handles GET /api/v1/pricing/format?amount=...&compact=...
func (h *Handler) Format(c *gin.Context) {
	var query FormatQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindBadRequest, msgInvalidRequest, err).
			WithDetails(map[string]string{"error": err.Error()}))
		return
	}
	if err := h.val.Struct(query); err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindValidation, "query 'amount' is required", err).
			WithDetails(validator.FieldErrors(err)))
		return
	}

	httpkit.OK(c, h.svc.Format(*query.Amount, query.Compact))
}
