package dto

import (
	"math/big"

	"pet-world-gateway/internal/core/domain"
)

// ConnectResponse is returned when a wallet session is opened.
type ConnectResponse struct {
	Token   string          `json:"token"`
	Expiry  int64           `json:"expiry"` // Unix timestamp
	Session *domain.Session `json:"session"`
}

// AdoptRequest is the request body for adopting a pet.
type AdoptRequest struct {
	Name string `json:"name" binding:"required,pet_name"`
	Type string `json:"type" binding:"required,max=32,safe_id"`
}

// Intent converts the request to a domain intent.
func (r AdoptRequest) Intent() domain.AdoptionIntent {
	return domain.AdoptionIntent{Name: r.Name, Type: r.Type}
}

// BreedRequest is the request body for breeding. Parents default to the
// current breeding selection when omitted.
type BreedRequest struct {
	ParentA   uint64 `json:"parent_a,omitempty"`
	ParentB   uint64 `json:"parent_b,omitempty"`
	ChildName string `json:"child_name" binding:"required,pet_name"`
}

// SelectionRequest toggles one pet in the breeding selection.
type SelectionRequest struct {
	PetID uint64 `json:"pet_id" binding:"required,gt=0"`
}

// TransferRequest is the request body for giving a pet to another account.
type TransferRequest struct {
	To string `json:"to" binding:"required,eth_address"`
}

// ContractsRequest updates any subset of the contract address book.
type ContractsRequest struct {
	Pet         string `json:"pet,omitempty" binding:"omitempty,eth_address"`
	PetCoin     string `json:"pet_coin,omitempty" binding:"omitempty,eth_address"`
	PetAdoption string `json:"pet_adoption,omitempty" binding:"omitempty,eth_address"`
	PetBreeding string `json:"pet_breeding,omitempty" binding:"omitempty,eth_address"`
}

// Addresses returns the non-empty entries keyed by contract name.
func (r ContractsRequest) Addresses() domain.ContractAddresses {
	out := domain.ContractAddresses{}
	for name, addr := range map[domain.ContractName]string{
		domain.ContractPet:         r.Pet,
		domain.ContractPetCoin:     r.PetCoin,
		domain.ContractPetAdoption: r.PetAdoption,
		domain.ContractPetBreeding: r.PetBreeding,
	} {
		if addr != "" {
			out[name] = addr
		}
	}
	return out
}

// ContractsResponse reports the book and which entries are still missing.
type ContractsResponse struct {
	Addresses domain.ContractAddresses `json:"addresses"`
	Missing   []domain.ContractName    `json:"missing"`
	Complete  bool                     `json:"complete"`
}

// NewContractsResponse builds the response for a book.
func NewContractsResponse(addrs domain.ContractAddresses) ContractsResponse {
	missing := addrs.Missing()
	if missing == nil {
		missing = []domain.ContractName{}
	}
	return ContractsResponse{Addresses: addrs, Missing: missing, Complete: len(missing) == 0}
}

// AcceptedResponse is returned when a write intent passed pre-flight and was
// submitted. Progress is visible in the action state.
type AcceptedResponse struct {
	Action    domain.Action `json:"action"`
	SessionID string        `json:"session_id"`
	Status    string        `json:"status"`
}

// BalanceResponse carries the coin balance and the native currency balance.
type BalanceResponse struct {
	Coins  uint64 `json:"coins"`
	Native string `json:"native"` // wei, decimal
}

// NewBalanceResponse formats the native balance as a decimal string.
func NewBalanceResponse(coins uint64, native *big.Int) BalanceResponse {
	resp := BalanceResponse{Coins: coins, Native: "0"}
	if native != nil {
		resp.Native = native.String()
	}
	return resp
}

// SignInResponse is the sign-in status plus the reward the next sign-in pays.
type SignInResponse struct {
	domain.SignInStatus
	NextReward uint64 `json:"next_reward"`
}

// NewSignInResponse builds the sign-in status response.
func NewSignInResponse(s domain.SignInStatus) SignInResponse {
	return SignInResponse{SignInStatus: s, NextReward: s.NextReward()}
}

// PetResponse is a pet with its age for display.
type PetResponse struct {
	domain.Pet
	AgeDays int `json:"age_days"`
}
