package pricing

import (
	apphttp "storefront_backend/internal/http"
	"storefront_backend/platform/validator"
)

// Module wires the price formatting HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(val *validator.Validator) *Module {
	return &Module{handler: NewHandler(NewService(), val)}
}

func (m *Module) Name() string {
	return "pricing"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/pricing")
	group.GET("/format", m.handler.Format)
}

var _ apphttp.Module = (*Module)(nil)
