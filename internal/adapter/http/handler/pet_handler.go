package handler

import (
	"context"
	"time"

	"pet-world-gateway/internal/adapter/http/dto"
	"pet-world-gateway/internal/adapter/http/middleware"
	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"
	"pet-world-gateway/pkg/apperror"
	"pet-world-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// PetHandler handles pet list, detail and transfer endpoints.
type PetHandler struct {
	world ports.WorldService
	bg    *Background
	now   func() time.Time
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(world ports.WorldService, bg *Background) *PetHandler {
	return &PetHandler{world: world, bg: bg, now: time.Now}
}

// List handles GET /api/v1/pets. The cached list is returned, loading it
// on first access.
func (h *PetHandler) List(c *gin.Context) {
	pets := h.world.Snapshot().Pets
	if pets.Status != ports.StatusUnloaded {
		response.OK(c, pets)
		return
	}
	h.Refresh(c)
}

// Refresh handles POST /api/v1/pets/refresh.
func (h *PetHandler) Refresh(c *gin.Context) {
	res := h.world.RefreshPets(c.Request.Context())
	if !res.OK {
		failResult(c, res)
		return
	}
	response.OK(c, h.world.Snapshot().Pets)
}

// Detail handles GET /api/v1/pets/:id.
func (h *PetHandler) Detail(c *gin.Context) {
	id, ok := petIDParam(c)
	if !ok {
		return
	}
	res := h.world.PetDetail(c.Request.Context(), id)
	if !res.OK {
		failResult(c, res)
		return
	}
	response.OK(c, dto.PetResponse{Pet: res.Value, AgeDays: res.Value.AgeDays(h.now())})
}

// Transfer handles POST /api/v1/pets/:id/transfer.
func (h *PetHandler) Transfer(c *gin.Context) {
	id, ok := petIDParam(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	intent := domain.TransferIntent{PetID: id, To: req.To}
	res, err := h.world.CheckTransfer(c.Request.Context(), intent)
	if err != nil {
		fail(c, err)
		return
	}

	h.bg.Go(c.Request.Context(), domain.ActionTransfer, func(ctx context.Context) (bool, domain.FailureKind, string) {
		return outcome(h.world.Transfer(ctx, res, intent))
	})
	accepted(c, domain.ActionTransfer)
}

func accepted(c *gin.Context, action domain.Action) {
	response.Accepted(c, dto.AcceptedResponse{
		Action:    action,
		SessionID: middleware.SessionID(c).String(),
		Status:    "submitted",
	})
}
