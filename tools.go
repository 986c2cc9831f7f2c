//go:build tools
// +build tools

// Package tools tracks tool dependencies that are required by the project
// but not directly imported by application code. This file ensures these
// dependencies are tracked in go.mod.
//
// See: https://github.com/golang/go/wiki/Modules#how-can-i-track-tool-dependencies-for-a-module
package tools

import (
	// swag regenerates docs/ from the handler annotations:
	//   swag init -g cmd/api/main.go -o docs
	_ "github.com/swaggo/swag/cmd/swag"
)
