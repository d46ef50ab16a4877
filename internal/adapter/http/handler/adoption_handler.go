package handler

import (
	"context"

	"pet-world-gateway/internal/adapter/http/dto"
	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"
	"pet-world-gateway/pkg/apperror"
	"pet-world-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdoptionHandler handles the adoption view and adopt intent.
type AdoptionHandler struct {
	world ports.WorldService
	bg    *Background
}

// NewAdoptionHandler creates a new AdoptionHandler.
func NewAdoptionHandler(world ports.WorldService, bg *Background) *AdoptionHandler {
	return &AdoptionHandler{world: world, bg: bg}
}

// View handles GET /api/v1/adoption.
func (h *AdoptionHandler) View(c *gin.Context) {
	view, err := h.world.AdoptionView(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, view)
}

// Adopt handles POST /api/v1/adoption. Pre-flight runs inline; the
// approve and adopt transactions run after the 202 is sent.
func (h *AdoptionHandler) Adopt(c *gin.Context) {
	var req dto.AdoptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	intent := req.Intent()
	res, err := h.world.CheckAdopt(c.Request.Context(), intent)
	if err != nil {
		fail(c, err)
		return
	}

	h.bg.Go(c.Request.Context(), domain.ActionAdopt, func(ctx context.Context) (bool, domain.FailureKind, string) {
		return outcome(h.world.Adopt(ctx, res, intent))
	})
	accepted(c, domain.ActionAdopt)
}
