//go:build tools

package tools

// This file tracks CLI tool dependencies. It is not compiled into the
// binary.
//
// - github.com/matryer/moq (test double generation; see go.mod tool directive)
// - github.com/pressly/goose/v3/cmd/goose (migrations; see go.mod tool directive)
