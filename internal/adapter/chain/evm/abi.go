package evm

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const petABIJSON = `[
 {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"tokenOfOwnerByIndex","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"index","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"getPetInfo","stateMutability":"view","inputs":[{"name":"petId","type":"uint256"}],"outputs":[
   {"name":"name","type":"string"},
   {"name":"petType","type":"string"},
   {"name":"rarity","type":"uint8"},
   {"name":"level","type":"uint256"},
   {"name":"experience","type":"uint256"},
   {"name":"birthTime","type":"uint256"},
   {"name":"lastBreedTime","type":"uint256"},
   {"name":"canBreed","type":"bool"},
   {"name":"owner","type":"address"},
   {"name":"dna","type":"uint256"}]},
 {"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[]},
 {"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":true}]}
]`

const petCoinABIJSON = `[
 {"type":"function","name":"getBalance","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"getSignInInfo","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"lastSignInTime","type":"uint256"},{"name":"consecutiveDays","type":"uint256"}]},
 {"type":"function","name":"canSignInToday","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
 {"type":"function","name":"baseSignInReward","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"maxStreakBonus","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
 {"type":"function","name":"signIn","stateMutability":"nonpayable","inputs":[],"outputs":[]},
 {"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]},
 {"type":"event","name":"SignedIn","anonymous":false,"inputs":[{"name":"user","type":"address","indexed":true},{"name":"reward","type":"uint256","indexed":false},{"name":"consecutiveDays","type":"uint256","indexed":false}]}
]`

const petAdoptionABIJSON = `[
 {"type":"function","name":"adoptionFee","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"adoptPet","stateMutability":"nonpayable","inputs":[{"name":"name","type":"string"},{"name":"petType","type":"string"}],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"event","name":"PetAdopted","anonymous":false,"inputs":[{"name":"owner","type":"address","indexed":true},{"name":"petId","type":"uint256","indexed":true},{"name":"name","type":"string","indexed":false},{"name":"petType","type":"string","indexed":false}]}
]`

const petBreedingABIJSON = `[
 {"type":"function","name":"breedingFee","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"canBreed","stateMutability":"view","inputs":[{"name":"petId","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
 {"type":"function","name":"getCooldownTimeLeft","stateMutability":"view","inputs":[{"name":"petId","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"breedPets","stateMutability":"nonpayable","inputs":[{"name":"parent1Id","type":"uint256"},{"name":"parent2Id","type":"uint256"},{"name":"childName","type":"string"}],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"event","name":"PetsBreed","anonymous":false,"inputs":[{"name":"owner","type":"address","indexed":true},{"name":"childId","type":"uint256","indexed":true},{"name":"parent1Id","type":"uint256","indexed":false},{"name":"parent2Id","type":"uint256","indexed":false}]}
]`

var (
	petABI         = mustParseABI(petABIJSON)
	petCoinABI     = mustParseABI(petCoinABIJSON)
	petAdoptionABI = mustParseABI(petAdoptionABIJSON)
	petBreedingABI = mustParseABI(petBreedingABIJSON)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("evm: invalid contract ABI: " + err.Error())
	}
	return parsed
}
