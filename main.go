// main is the entry point for the gpxscale CLI.
package main

import (
	"github.com/velomapa/gpxscale/cmd"
	"github.com/velomapa/gpxscale/internal/contract"
	"github.com/velomapa/gpxscale/internal/iocache"
)

func main() {
	err := cmd.Execute()

	// LogFatal exits the process, so close the cache before reporting.
	iocache.CloseCaching()

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
