//go:build !linux

package main

import (
	"fmt"
	"time"
)

func usageStats(elapsed time.Duration) string {
	return fmt.Sprintf("elapsed: %s", elapsed.Round(time.Millisecond))
}
