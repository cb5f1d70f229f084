package system

import (
	"context"
	"time"

	"sankhya-crm/internal/connectors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const erpCheckTimeout = 15 * time.Second

type HealthController struct {
	Connector connectors.Connector
	Logger    *zap.Logger
}

func NewHealthController(connector connectors.Connector, logger *zap.Logger) *HealthController {
	return &HealthController{Connector: connector, Logger: logger}
}

// Live godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Router       /health [get]
func (c *HealthController) Live(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

// ERP godoc
// @Summary      ERP reachability check
// @Description  Acquires a gateway session, logging in when none is cached
// @Tags         system
// @Produce      json
// @Router       /health/erp [get]
func (c *HealthController) ERP(ctx *fiber.Ctx) error {
	checkCtx, cancel := context.WithTimeout(ctx.UserContext(), erpCheckTimeout)
	defer cancel()

	if err := c.Connector.TestConnection(checkCtx); err != nil {
		c.Logger.Warn("ERP health check failed", zap.Error(err))
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":    "unavailable",
			"connector": c.Connector.GetType(),
			"error":     err.Error(),
		})
	}

	return ctx.JSON(fiber.Map{"status": "ok", "connector": c.Connector.GetType()})
}
