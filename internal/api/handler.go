package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mehidihasan1/twixdbot/internal/session"
)

type Handler struct {
	logger *zap.Logger
	store  *session.Store
}

func NewHandler(logger *zap.Logger, store *session.Store) *Handler {
	return &Handler{logger: logger, store: store}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Stats(c *fiber.Ctx) error {
	return c.JSON(StatsResponse{ActiveSessions: h.store.Count()})
}

type StatsResponse struct {
	ActiveSessions int `json:"active_sessions"`
}
