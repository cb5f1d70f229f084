package lead

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type LeadController struct {
	LeadService LeadService
}

func NewLeadController(leadService LeadService) *LeadController {
	return &LeadController{LeadService: leadService}
}

// UpdateStage godoc
// @Summary      Move a lead to another pipeline stage
// @Tags         leads
// @Accept       json
// @Produce      json
// @Success      200  {object}  StageUpdateResult
// @Failure      500  {object}  map[string]string
// @Router       /api/leads/atualizar-estagio [post]
func (c *LeadController) UpdateStage(ctx *fiber.Ctx) error {
	var input StageUpdate
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := c.LeadService.UpdateLeadStage(ctx.UserContext(), input.LeadCode.String(), input.NewStage.String())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(result)
}

// UpdateStatus godoc
// @Summary      Change a lead status
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        codLead  path  string  true  "Lead code"
// @Success      200  {object}  map[string]string
// @Router       /api/leads/{codLead}/status [put]
func (c *LeadController) UpdateStatus(ctx *fiber.Ctx) error {
	var input StatusUpdate
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	err := c.LeadService.UpdateLeadStatus(ctx.UserContext(), ctx.Params("codLead"), input.Status, input.LossReason)
	if err != nil {
		if errors.Is(err, ErrInvalidLeadStatus) || errors.Is(err, ErrMissingLeadID) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Lead status updated successfully"})
}
