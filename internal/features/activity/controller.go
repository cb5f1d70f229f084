package activity

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type ActivityController struct {
	ActivityService ActivityService
}

func NewActivityController(activityService ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// ListActivities godoc
// @Summary      List lead activities
// @Tags         activities
// @Produce      json
// @Param        codLead  query  string  false  "Lead code"
// @Param        ativo    query  string  false  "Active flag (S/N)"  default(S)
// @Success      200  {array}  Activity
// @Router       /api/activities [get]
func (c *ActivityController) ListActivities(ctx *fiber.Ctx) error {
	activities := c.ActivityService.ListActivities(ctx.UserContext(), ctx.Query("codLead"), ctx.Query("ativo", "S"))
	return ctx.JSON(activities)
}

// CreateActivity godoc
// @Summary      Create a lead activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Success      201  {object}  Activity
// @Router       /api/activities [post]
func (c *ActivityController) CreateActivity(ctx *fiber.Ctx) error {
	var input Activity
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if !input.Type.IsValid() {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid activity type %q", input.Type),
		})
	}
	if err := input.ValidateDates(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := c.ActivityService.CreateActivity(ctx.UserContext(), input)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(created)
}

// ExportActivities godoc
// @Summary      Export lead activities to Excel
// @Tags         activities
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router       /api/activities/export [get]
func (c *ActivityController) ExportActivities(ctx *fiber.Ctx) error {
	content, filename, err := c.ActivityService.ExportActivities(ctx.UserContext(), ctx.Query("codLead"), ctx.Query("ativo", "S"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export activities"})
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Send(content)
}
