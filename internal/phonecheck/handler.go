package phonecheck

import (
	"storefront_backend/platform/apperr"
	"storefront_backend/platform/httpkit"
	"storefront_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler exposes the phone normalization endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Normalize handles POST /api/v1/phone/normalize
func (h *Handler) Normalize(c *gin.Context) {
	var req NormalizeRequest
	if !h.bind(c, &req) {
		return
	}

	httpkit.OK(c, h.svc.Inspect(req.Phone))
}

// Validate handles GET /api/v1/phone/validate?phone=...
func (h *Handler) Validate(c *gin.Context) {
	var query ValidateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindBadRequest, msgInvalidRequest, err))
		return
	}

	httpkit.OK(c, h.svc.Validate(query.Phone))
}

// NormalizeBatch handles POST /api/v1/phone/normalize/batch
func (h *Handler) NormalizeBatch(c *gin.Context) {
	var req BatchRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.svc.InspectBatch(c.Request.Context(), req.Phones)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, result)
}

// Verify handles POST /api/v1/phone/verify
func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if !h.bind(c, &req) {
		return
	}

	details, err := h.svc.Verify(req.Phone)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, details)
}

func (h *Handler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindBadRequest, msgInvalidRequest, err))
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindValidation, msgValidationFailed, err).
			WithDetails(validator.FieldErrors(err)))
		return false
	}
	return true
}
