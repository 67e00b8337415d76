// Package version reports build metadata for dsh.
//
// Values come from, in order of preference:
//   - variables injected with -ldflags at link time
//   - the build info embedded by the Go toolchain
//   - development defaults
//
// Example:
//
//	go build -ldflags "-X github.com/dendrascience/dendra-shell/internal/version.Version=v1.0.0"
package version
