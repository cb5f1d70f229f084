package lead

import (
	"sankhya-crm/internal/common/api"
	"sankhya-crm/internal/config"
	"sankhya-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LeadApi struct {
	LeadController *LeadController
	Config         *config.Config
}

func NewLeadApi(leadController *LeadController, config *config.Config) api.Route {
	return &LeadApi{
		LeadController: leadController,
		Config:         config,
	}
}

func (api *LeadApi) Setup(app *fiber.App) {
	group := app.Group("/api/leads", middleware.AuthMiddleware(api.Config.SkipAuth))
	group.Post("/atualizar-estagio", api.LeadController.UpdateStage)
	group.Put("/:codLead/status", api.LeadController.UpdateStatus)
}
