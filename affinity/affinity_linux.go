//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux implementation over sched_setaffinity, using the node's sysfs
// cpulist. Pure Go; no libnuma dependency.

package affinity

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/momentics/hugealloc/internal/numa"
)

func pinToNodePlatform(node int) error {
	cpus, err := numa.NodeCPUs(node)
	if err != nil {
		return err
	}
	if len(cpus) == 0 {
		return errors.Errorf("affinity: NUMA node %d has no CPUs", node)
	}

	var set unix.CPUSet
	for _, cpu := range cpus {
		set.Set(cpu)
	}

	runtime.LockOSThread()
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return errors.Wrapf(err, "affinity: sched_setaffinity to node %d failed", node)
	}
	return nil
}
