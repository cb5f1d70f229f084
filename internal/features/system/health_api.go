package system

import (
	"sankhya-crm/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HealthApi struct {
	Controller *HealthController
}

func NewHealthApi(controller *HealthController) api.Route {
	return &HealthApi{Controller: controller}
}

func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/health", h.Controller.Live)
	app.Get("/health/erp", h.Controller.ERP)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
