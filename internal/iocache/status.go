package iocache

import (
	"fmt"

	"github.com/velomapa/gpxscale/internal/contract"
)

// PrintCacheStatus prints cache status information.
func PrintCacheStatus(status contract.CacheStatus) {
	fmt.Printf("Cache Backend: %s\n", status.Backend)
	fmt.Printf("Total Entries: %d\n", status.Entries)
}
