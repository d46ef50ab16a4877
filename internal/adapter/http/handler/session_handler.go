package handler

import (
	"pet-world-gateway/internal/adapter/http/dto"
	"pet-world-gateway/internal/adapter/http/middleware"
	"pet-world-gateway/internal/core/ports"
	"pet-world-gateway/pkg/apperror"
	"pet-world-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles wallet session endpoints.
type SessionHandler struct {
	world    ports.WorldService
	tokenSvc ports.TokenService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(world ports.WorldService, tokenSvc ports.TokenService) *SessionHandler {
	return &SessionHandler{world: world, tokenSvc: tokenSvc}
}

// Connect handles POST /api/v1/session/connect. It opens a new wallet
// session, replacing any existing one, and issues a token bound to it.
func (h *SessionHandler) Connect(c *gin.Context) {
	session, err := h.world.Connect(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	token, expiry, err := h.tokenSvc.Generate(session.ID, session.Account)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	c.Set(middleware.CtxSessionID, session.ID)
	c.Set(middleware.CtxAccount, session.Account)
	response.Created(c, dto.ConnectResponse{
		Token:   token,
		Expiry:  expiry.Unix(),
		Session: session,
	})
}

// Current handles GET /api/v1/session.
func (h *SessionHandler) Current(c *gin.Context) {
	session := h.world.Session()
	if session == nil {
		response.Error(c, apperror.ErrNoSession())
		return
	}
	response.OK(c, session)
}

// Disconnect handles DELETE /api/v1/session.
func (h *SessionHandler) Disconnect(c *gin.Context) {
	if err := h.world.Disconnect(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, gin.H{"disconnected": true})
}

// State handles GET /api/v1/state.
func (h *SessionHandler) State(c *gin.Context) {
	response.OK(c, h.world.Snapshot())
}
