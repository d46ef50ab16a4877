package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const maxPetNameLen = 32

var (
	safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)
	petNameRe    = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} \-_]*$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("pet_name", validatePetName)
		_ = v.RegisterValidation("eth_address", validateEthAddress)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

// validatePetName accepts letters, digits, spaces, dashes and underscores,
// starting with a letter or digit. Names go on-chain, so nothing that
// SanitizeStruct would escape is allowed.
func validatePetName(fl validator.FieldLevel) bool {
	return isPetName(fl.Field().String())
}

func isPetName(s string) bool {
	s = strings.TrimSpace(s)
	return utf8.RuneCountInString(s) <= maxPetNameLen && petNameRe.MatchString(s)
}

// validateEthAddress accepts a 0x-prefixed 20-byte hex address.
func validateEthAddress(fl validator.FieldLevel) bool {
	return isEthAddress(fl.Field().String())
}

// isEthAddress is common.IsHexAddress with the prefix made mandatory, matching
// what the ledger adapters and the address book accept.
func isEthAddress(s string) bool {
	return (strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")) && common.IsHexAddress(s)
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				s := sanitize(elem.String())
				elem.SetString(s)
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
