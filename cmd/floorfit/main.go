// FloorFit — automated floor plan layout
//
// A command-line tool for placing rectangular space units inside a floor
// plan under spacing and clearance constraints, grouping them into rows,
// and synthesizing a connected corridor network with entrance access.
//
// Build:
//   go build -o floorfit ./cmd/floorfit
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o floorfit.exe ./cmd/floorfit
//   GOOS=darwin  GOARCH=arm64 go build -o floorfit-darwin ./cmd/floorfit

package main

import (
	"os"

	"github.com/piwi3910/FloorFit/internal/cli"
)

// Build information, injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
