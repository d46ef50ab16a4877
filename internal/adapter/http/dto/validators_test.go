package dto

import (
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-world-gateway/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := AdoptRequest{Name: "  Rex  ", Type: " dog "}
	SanitizeStruct(&req)

	assert.Equal(t, "Rex", req.Name)
	assert.Equal(t, "dog", req.Type)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := BreedRequest{ChildName: "<script>alert('x')</script>"}
	SanitizeStruct(&req)

	assert.Contains(t, req.ChildName, "&lt;script&gt;")
	assert.NotContains(t, req.ChildName, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	s := "  spaced  "
	v := struct{ Note *string }{Note: &s}
	SanitizeStruct(&v)
	assert.Equal(t, "spaced", *v.Note)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	v := struct{ Note *string }{}
	SanitizeStruct(&v)
	assert.Nil(t, v.Note)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID(t *testing.T) {
	for _, tc := range []string{"dog", "cat", "red-panda", "axolotl_2", "v1.2"} {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
	for _, tc := range []string{"", "big dog", "dog<1>", "dog;DROP", "dog\n"} {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestIsPetName(t *testing.T) {
	valid := []string{"Rex", "Nova", "Mr Whiskers", "Bao-Bao", "小白", "R2_D2", " Padded "}
	for _, tc := range valid {
		assert.True(t, isPetName(tc), "expected valid: %q", tc)
	}

	invalid := []string{"", "   ", "-dash", "<b>", "O'Brien", strings.Repeat("a", maxPetNameLen+1)}
	for _, tc := range invalid {
		assert.False(t, isPetName(tc), "expected invalid: %q", tc)
	}
}

func TestIsEthAddress(t *testing.T) {
	valid := []string{
		"0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		"0x70997970c51812dc3a010c7d01b50e0d17dc79c8",
		"0X5FBDB2315678AFECB367F032D93F642F64180AA3",
	}
	for _, tc := range valid {
		assert.True(t, isEthAddress(tc), "expected valid: %s", tc)
	}

	invalid := []string{
		"",
		"0x",
		"0x1234",
		"70997970C51812dc3A010C7d01b50e0d17dc79C8",
		"0x70997970C51812dc3A010C7d01b50e0d17dc79C",
		"0x70997970C51812dc3A010C7d01b50e0d17dc79C8aa",
		"0xZZ997970C51812dc3A010C7d01b50e0d17dc79C8",
	}
	for _, tc := range invalid {
		assert.False(t, isEthAddress(tc), "expected invalid: %q", tc)
	}
}

func TestBinding_CustomValidators(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bind := func(body string, dst interface{}) error {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		return c.ShouldBindJSON(dst)
	}

	var adopt AdoptRequest
	require.NoError(t, bind(`{"name":"Rex","type":"dog"}`, &adopt))
	assert.Error(t, bind(`{"name":"<Rex>","type":"dog"}`, &AdoptRequest{}))
	assert.Error(t, bind(`{"name":"Rex","type":"big dog"}`, &AdoptRequest{}))

	assert.NoError(t, bind(`{"to":"0x70997970C51812dc3A010C7d01b50e0d17dc79C8"}`, &TransferRequest{}))
	assert.Error(t, bind(`{"to":"0x1234"}`, &TransferRequest{}))

	assert.NoError(t, bind(`{"pet":"0x5FbDB2315678afecb367f032d93F642f64180aa3"}`, &ContractsRequest{}))
	assert.Error(t, bind(`{"pet_coin":"nope"}`, &ContractsRequest{}))
}

func TestContractsRequest_Addresses(t *testing.T) {
	req := ContractsRequest{Pet: "0x5FbDB2315678afecb367f032d93F642f64180aa3"}
	addrs := req.Addresses()
	assert.Len(t, addrs, 1)
	assert.Equal(t, req.Pet, addrs[domain.ContractPet])
}

func TestNewContractsResponse(t *testing.T) {
	resp := NewContractsResponse(domain.ContractAddresses{})
	assert.False(t, resp.Complete)
	assert.Len(t, resp.Missing, len(domain.ContractNames))
}

func TestNewBalanceResponse(t *testing.T) {
	assert.Equal(t, "0", NewBalanceResponse(5, nil).Native)
	assert.Equal(t, "1000000000000000000", NewBalanceResponse(5, big.NewInt(1e18)).Native)
}

func TestNewSignInResponse(t *testing.T) {
	resp := NewSignInResponse(domain.SignInStatus{BaseReward: 10, Streak: 3, MaxStreakBonus: 50})
	assert.Equal(t, uint64(16), resp.NextReward)
}
