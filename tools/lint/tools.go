//go:build tools

// Package lint pins the linters run over preset-env in their own module, so
// the library's go.mod carries only what the resolver and CLI import.
//
// From the repository root:
//
//	go run -modfile=tools/lint/go.mod github.com/golangci/golangci-lint/v2/cmd/golangci-lint run ./...
//	go run -modfile=tools/lint/go.mod honnef.co/go/tools/cmd/staticcheck ./...
package lint
