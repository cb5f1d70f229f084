package activity

import (
	"sankhya-crm/internal/common/api"
	"sankhya-crm/internal/config"
	"sankhya-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ActivityApi struct {
	ActivityController *ActivityController
	Config             *config.Config
}

func NewActivityApi(activityController *ActivityController, config *config.Config) api.Route {
	return &ActivityApi{
		ActivityController: activityController,
		Config:             config,
	}
}

func (api *ActivityApi) Setup(app *fiber.App) {
	group := app.Group("/api/activities", middleware.AuthMiddleware(api.Config.SkipAuth))
	group.Get("/", api.ActivityController.ListActivities)
	group.Post("/", api.ActivityController.CreateActivity)
	group.Get("/export", api.ActivityController.ExportActivities)
}
