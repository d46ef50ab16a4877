package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ContractName keys an entry in the contract address book.
type ContractName string

const (
	ContractPet         ContractName = "pet"
	ContractPetCoin     ContractName = "pet_coin"
	ContractPetAdoption ContractName = "pet_adoption"
	ContractPetBreeding ContractName = "pet_breeding"
)

// ContractNames lists every address the gateway needs, in display order.
var ContractNames = []ContractName{ContractPet, ContractPetCoin, ContractPetAdoption, ContractPetBreeding}

var addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// IsAddress reports whether s is a 0x-prefixed 20-byte hex address.
func IsAddress(s string) bool {
	return addressRe.MatchString(s)
}

// ParseContractName validates a book key.
func ParseContractName(s string) (ContractName, error) {
	n := ContractName(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ContractNames {
		if n == known {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown contract %q", s)
}

// ContractAddresses is the set of deployed contract addresses, keyed by name.
type ContractAddresses map[ContractName]string

// Missing returns the names without a well-formed address.
func (a ContractAddresses) Missing() []ContractName {
	var missing []ContractName
	for _, n := range ContractNames {
		if !IsAddress(a[n]) {
			missing = append(missing, n)
		}
	}
	return missing
}

// Complete reports whether every contract has an address.
func (a ContractAddresses) Complete() bool {
	return len(a.Missing()) == 0
}
