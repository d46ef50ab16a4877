package evm

import (
	"errors"
	"fmt"
	"testing"

	"pet-world-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

type codedError struct {
	code int
	msg  string
}

func (e codedError) Error() string  { return e.msg }
func (e codedError) ErrorCode() int { return e.code }

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    error
		wantMsg string
	}{
		{"nil", nil, nil, ""},
		{"eip1193 code", codedError{4001, "MetaMask Tx Signature: User denied transaction"}, domain.ErrUserRejected, ""},
		{"rejection phrase", errors.New("signer: user rejected the request"), domain.ErrUserRejected, ""},
		{"revert", errors.New("estimating gas: execution reverted: Pet is still in cooldown"), domain.ErrExecutionReverted, "execution reverted: Pet is still in cooldown"},
		{"gas funds", errors.New("insufficient funds for gas * price + value"), domain.ErrInsufficientFunds, ""},
		{"already classified", fmt.Errorf("%w: x", domain.ErrExecutionReverted), domain.ErrExecutionReverted, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, got.Error())
			}
		})
	}
}

func TestClassify_PassThrough(t *testing.T) {
	err := errors.New("dial tcp: connection refused")
	assert.Same(t, err, classify(err))
}
