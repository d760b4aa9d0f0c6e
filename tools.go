//go:build tools

package tools

// Development tools pinned through go.mod:
//   - swag regenerates docs/ from the handler annotations (swag init -g cmd/app/main.go)
//   - mockery and golangci-lint back the lint and mock targets
//   - benchstat compares runs of benchmarks/achievement
import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
