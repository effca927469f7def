// SPDX-License-Identifier: MIT

// Package build holds build-time version information injected via ldflags.
//
//	go build -ldflags "-X github.com/katalvlaran/lvnmf/cmd/lvnmf/internal/build.Version=v0.1.0 \
//	  -X github.com/katalvlaran/lvnmf/cmd/lvnmf/internal/build.Commit=$(git rev-parse --short HEAD)"
package build

import (
	"fmt"
	"runtime"
)

// Set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns a formatted version string.
func String() string {
	return fmt.Sprintf("lvnmf %s (%s) built %s %s/%s",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
