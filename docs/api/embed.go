// Package api carries the OpenAPI description of the gateway's HTTP surface.
package api

import _ "embed"

// OpenAPI is openapi.yaml, compiled into the binary.
//
//go:embed openapi.yaml
var OpenAPI []byte
