package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/admin-console-api/internal/application/notify"
)

// NotificationHandler expone el toast vigente (solo lectura).
type NotificationHandler struct {
	ch *notify.Channel
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(ch *notify.Channel) *NotificationHandler {
	return &NotificationHandler{ch: ch}
}

// Current godoc
// @Summary      Toast vigente (o 204 si el slot está vacío)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  notify.Notification
// @Success      204
// @Router       /api/notifications/current [get]
func (h *NotificationHandler) Current(c *fiber.Ctx) error {
	cur := h.ch.Current()
	if cur == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(cur)
}
