package evm

import (
	"errors"
	"fmt"
	"strings"

	"pet-world-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/rpc"
)

// userRejectedCode is the EIP-1193 "user rejected request" error code.
const userRejectedCode = 4001

var rejectionPhrases = []string{"user rejected", "user denied", "request denied", "rejected by user"}

// classify maps a node or signer error onto the domain sentinels, keeping
// the node's message.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrUserRejected) || errors.Is(err, domain.ErrExecutionReverted) {
		return err
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == userRejectedCode {
		return fmt.Errorf("%w: %s", domain.ErrUserRejected, err.Error())
	}

	msg := strings.ToLower(err.Error())
	for _, phrase := range rejectionPhrases {
		if strings.Contains(msg, phrase) {
			return fmt.Errorf("%w: %s", domain.ErrUserRejected, err.Error())
		}
	}
	if i := strings.Index(msg, "execution reverted"); i >= 0 {
		return revertError(err.Error()[i:])
	}
	if strings.Contains(msg, "insufficient funds") {
		return fmt.Errorf("%w: %s", domain.ErrInsufficientFunds, err.Error())
	}
	return err
}

// revertError wraps a revert message so it still reads verbatim.
type revertError string

func (e revertError) Error() string { return string(e) }

func (e revertError) Unwrap() error { return domain.ErrExecutionReverted }
