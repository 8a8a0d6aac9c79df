// Package reporting renders the doctor's findings as a plain-text report.
package reporting

import (
	"fmt"
	"strings"

	"github.com/EasterCompany/dex-camb-tools/cache"
	"github.com/EasterCompany/dex-camb-tools/health"
	"github.com/EasterCompany/dex-camb-tools/system"
)

// HumanReadableBytes formats a byte count as a binary-unit string.
func HumanReadableBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// DoctorReport collects everything the doctor command found.
type DoctorReport struct {
	Checks []health.Check

	CPUUsage    float64
	MemoryUsage float64
	Disk        system.DiskUsage
	// HostProbeErr is set when the host probes themselves failed; the
	// usage numbers are meaningless in that case.
	HostProbeErr error

	Recent []cache.InvocationRecord
}

// Healthy reports whether every dependency check passed. Host load and
// invocation history are informational and never fail the doctor.
func (r *DoctorReport) Healthy() bool {
	for _, c := range r.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// String renders the report.
func (r *DoctorReport) String() string {
	var sections []string

	var checks []string
	checks = append(checks, "Service Status")
	for _, c := range r.Checks {
		mark := "FAIL"
		if c.OK {
			mark = "OK"
		}
		checks = append(checks, fmt.Sprintf("  [%s] %-12s %s", mark, c.Name, c.Detail))
	}
	sections = append(sections, strings.Join(checks, "\n"))

	if r.HostProbeErr != nil {
		sections = append(sections, fmt.Sprintf("System Status\n  unavailable: %v", r.HostProbeErr))
	} else {
		sections = append(sections, strings.Join([]string{
			"System Status",
			fmt.Sprintf("  CPU:    %.2f%%", r.CPUUsage),
			fmt.Sprintf("  Memory: %.2f%%", r.MemoryUsage),
			fmt.Sprintf("  Disk:   %.2f%% used, %s free on %s",
				r.Disk.UsedPercent, HumanReadableBytes(r.Disk.FreeBytes), r.Disk.Path),
		}, "\n"))
	}

	if len(r.Recent) > 0 {
		recent := []string{"Recent Invocations"}
		for _, rec := range r.Recent {
			line := fmt.Sprintf("  %s  %-22s %s", rec.At.Format("15:04:05"), rec.Tool, rec.Duration)
			if rec.Error != "" {
				line += "  error: " + rec.Error
			}
			recent = append(recent, line)
		}
		sections = append(sections, strings.Join(recent, "\n"))
	}

	return strings.Join(sections, "\n\n")
}
