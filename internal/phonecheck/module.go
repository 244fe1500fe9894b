package phonecheck

import (
	apphttp "storefront_backend/internal/http"
	"storefront_backend/platform/config"
	"storefront_backend/platform/logger"
	"storefront_backend/platform/validator"
)

// Module wires the phone normalization HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.PhoneConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(cfg, log)
	h := NewHandler(svc, val)
	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "phonecheck"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/phone")
	group.POST("/normalize", m.handler.Normalize)
	group.POST("/normalize/batch", m.handler.NormalizeBatch)
	group.GET("/validate", m.handler.Validate)
	group.POST("/verify", m.handler.Verify)
}

var _ apphttp.Module = (*Module)(nil)
