package handler

import (
	"errors"

	"pet-world-gateway/internal/adapter/http/dto"
	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"
	"pet-world-gateway/pkg/apperror"
	"pet-world-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// ContractHandler handles the contract address book.
type ContractHandler struct {
	book ports.AddressBookService
}

// NewContractHandler creates a new ContractHandler.
func NewContractHandler(book ports.AddressBookService) *ContractHandler {
	return &ContractHandler{book: book}
}

// Get handles GET /api/v1/contracts.
func (h *ContractHandler) Get(c *gin.Context) {
	addrs, err := h.book.Addresses(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	response.OK(c, dto.NewContractsResponse(addrs))
}

// Update handles PUT /api/v1/contracts. Entries not named in the body keep
// their stored address. The change applies from the next connect.
func (h *ContractHandler) Update(c *gin.Context) {
	var req dto.ContractsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	addrs := req.Addresses()
	if len(addrs) == 0 {
		response.Error(c, apperror.Validation("at least one contract address is required"))
		return
	}

	saved, err := h.book.Save(c.Request.Context(), addrs)
	switch {
	case errors.Is(err, domain.ErrInvalidIntent):
		fail(c, err)
		return
	case err != nil:
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	response.OK(c, dto.NewContractsResponse(saved))
}
