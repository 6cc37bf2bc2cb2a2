//go:build linux
// +build linux

// File: internal/numa/topology_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// NUMA topology probing via sysfs. Pure Go; no libnuma dependency.

package numa

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const sysNodePath = "/sys/devices/system/node"

// NodeCount returns the number of configured NUMA nodes, or 1 when the
// machine exposes no NUMA topology.
func NodeCount() int {
	entries, err := os.ReadDir(sysNodePath)
	if err != nil {
		return 1
	}
	count := 0
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "node") {
			if _, err := strconv.Atoi(name[len("node"):]); err == nil {
				count++
			}
		}
	}
	if count < 1 {
		return 1
	}
	return count
}

// NodeCPUs returns the logical CPU indices belonging to node, parsed
// from the node's sysfs cpulist ("0-3,8-11" style ranges).
func NodeCPUs(node int) ([]int, error) {
	raw, err := os.ReadFile(fmt.Sprintf("%s/node%d/cpulist", sysNodePath, node))
	if err != nil {
		return nil, fmt.Errorf("numa: reading cpulist for node %d: %w", node, err)
	}
	return parseCPUList(strings.TrimSpace(string(raw)))
}

func parseCPUList(list string) ([]int, error) {
	if list == "" {
		return nil, nil
	}
	var cpus []int
	for _, part := range strings.Split(list, ",") {
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			first, err := strconv.Atoi(lo)
			if err != nil {
				return nil, fmt.Errorf("numa: bad cpulist range %q", part)
			}
			last, err := strconv.Atoi(hi)
			if err != nil || last < first {
				return nil, fmt.Errorf("numa: bad cpulist range %q", part)
			}
			for c := first; c <= last; c++ {
				cpus = append(cpus, c)
			}
		} else {
			c, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("numa: bad cpulist entry %q", part)
			}
			cpus = append(cpus, c)
		}
	}
	return cpus, nil
}
