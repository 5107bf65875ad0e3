// Package version exposes build metadata set with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/stellrent/response/version.Version=1.2.3 \
//	  -X github.com/stellrent/response/version.Revision=abc123 \
//	  -X 'github.com/stellrent/response/version.BuiltAt=$(date -u +%FT%TZ)'" \
//	  ./cmd/stellresp
//
// Unset values fall back to the module build info embedded by the Go
// toolchain.
package version
