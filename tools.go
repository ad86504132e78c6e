//go:build tools

package main

// Pins CLI tooling used to regenerate docs/swagger.json:
//
//	swag init -g cmd/api/main.go -o docs --ot json
import (
	_ "github.com/swaggo/swag"
)
