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

// BreedingHandler handles parent selection and the breed intent.
type BreedingHandler struct {
	world ports.WorldService
	bg    *Background
}

// NewBreedingHandler creates a new BreedingHandler.
func NewBreedingHandler(world ports.WorldService, bg *Background) *BreedingHandler {
	return &BreedingHandler{world: world, bg: bg}
}

// View handles GET /api/v1/breeding.
func (h *BreedingHandler) View(c *gin.Context) {
	view, err := h.world.BreedingView(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, view)
}

// Toggle handles POST /api/v1/breeding/selection.
func (h *BreedingHandler) Toggle(c *gin.Context) {
	var req dto.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	response.OK(c, h.world.ToggleSelection(req.PetID))
}

// Clear handles DELETE /api/v1/breeding/selection.
func (h *BreedingHandler) Clear(c *gin.Context) {
	h.world.ClearSelection()
	response.OK(c, domain.BreedingSelection{})
}

// Breed handles POST /api/v1/breeding. Parents not named in the body are
// taken from the current selection.
func (h *BreedingHandler) Breed(c *gin.Context) {
	var req dto.BreedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	intent := domain.BreedingIntent{ParentA: req.ParentA, ParentB: req.ParentB, ChildName: req.ChildName}
	if intent.ParentA == 0 && intent.ParentB == 0 {
		ids := h.world.Snapshot().Selection.IDs()
		if len(ids) != 2 {
			response.Error(c, apperror.ErrInvalidIntent("select two pets to breed"))
			return
		}
		intent.ParentA, intent.ParentB = ids[0], ids[1]
	}

	res, err := h.world.CheckBreed(c.Request.Context(), intent)
	if err != nil {
		fail(c, err)
		return
	}

	h.bg.Go(c.Request.Context(), domain.ActionBreed, func(ctx context.Context) (bool, domain.FailureKind, string) {
		return outcome(h.world.Breed(ctx, res, intent))
	})
	accepted(c, domain.ActionBreed)
}
