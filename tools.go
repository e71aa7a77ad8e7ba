//go:build tools

package tools

// Development tools, tracked here so their versions stay pinned:
// - github.com/matryer/moq (mock generation, see //go:generate lines in tests)
// - github.com/pressly/goose/v3/cmd/goose (also declared as a go.mod tool)
