// Package system reads host health for the doctor report: CPU, memory, and
// free space on the artifact directory's filesystem.
package system

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// GetCPUUsage returns the current CPU usage as a percentage
func GetCPUUsage() (float64, error) {
	percentages, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(percentages) == 0 {
		return 0, fmt.Errorf("could not get CPU usage")
	}
	return percentages[0], nil
}

// GetMemoryUsage returns the current memory usage as a percentage
func GetMemoryUsage() (float64, error) {
	virtualMem, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return virtualMem.UsedPercent, nil
}

// DiskUsage describes the filesystem behind a path. Produced audio lands on
// disk, so the doctor flags artifact directories running out of space.
type DiskUsage struct {
	Path        string
	FreeBytes   uint64
	TotalBytes  uint64
	UsedPercent float64
}

// GetDiskUsage returns usage for the filesystem holding path.
func GetDiskUsage(path string) (DiskUsage, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return DiskUsage{}, fmt.Errorf("could not get disk usage for %s: %w", path, err)
	}
	return DiskUsage{
		Path:        path,
		FreeBytes:   usage.Free,
		TotalBytes:  usage.Total,
		UsedPercent: usage.UsedPercent,
	}, nil
}
