package handler

import (
	"context"

	"pet-world-gateway/internal/adapter/http/dto"
	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"
	"pet-world-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// CoinHandler handles balances and the daily sign-in.
type CoinHandler struct {
	world ports.WorldService
	bg    *Background
}

// NewCoinHandler creates a new CoinHandler.
func NewCoinHandler(world ports.WorldService, bg *Background) *CoinHandler {
	return &CoinHandler{world: world, bg: bg}
}

// Balance handles GET /api/v1/coins/balance.
func (h *CoinHandler) Balance(c *gin.Context) {
	ctx := c.Request.Context()
	res := h.world.RefreshBalance(ctx)
	if !res.OK {
		failResult(c, res)
		return
	}
	native, err := h.world.NativeBalance(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.NewBalanceResponse(res.Value, native))
}

// SignInStatus handles GET /api/v1/sign-in.
func (h *CoinHandler) SignInStatus(c *gin.Context) {
	res := h.world.RefreshSignIn(c.Request.Context())
	if !res.OK {
		failResult(c, res)
		return
	}
	response.OK(c, dto.NewSignInResponse(res.Value))
}

// SignIn handles POST /api/v1/sign-in. A second sign-in on the same day is
// rejected without contacting the ledger.
func (h *CoinHandler) SignIn(c *gin.Context) {
	res, err := h.world.CheckSignIn(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	h.bg.Go(c.Request.Context(), domain.ActionSignIn, func(ctx context.Context) (bool, domain.FailureKind, string) {
		return outcome(h.world.SignIn(ctx, res))
	})
	accepted(c, domain.ActionSignIn)
}
