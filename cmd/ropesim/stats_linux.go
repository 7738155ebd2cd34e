package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

func usageStats(elapsed time.Duration) string {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return fmt.Sprintf("elapsed: %s (no rusage: %s)", elapsed.Round(time.Millisecond), err)
	}
	cpu := time.Duration(ru.Utime.Nano() + ru.Stime.Nano())
	return fmt.Sprintf(
		"elapsed: %s, cpu: %s, max RSS: %s",
		elapsed.Round(time.Millisecond),
		cpu.Round(time.Millisecond),
		humanize.Bytes(uint64(ru.Maxrss)*1024), // KiB on Linux
	)
}
