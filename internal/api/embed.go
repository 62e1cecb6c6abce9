package api

import _ "embed"

// Spec is the contract api.gen.go is generated from, served at /openapi.yaml.
//
//go:embed openapi.yaml
var Spec []byte
