//go:build linux
// +build linux

// File: internal/numa/mbind_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Strict NUMA binding of attached memory ranges via raw mbind(2).
// golang.org/x/sys/unix carries the syscall number but no wrapper.

package numa

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Memory policy modes, from linux/mempolicy.h.
const (
	mpolDefault = iota
	mpolPreferred
	mpolBind
)

// BindStrict binds buf to node with MPOL_BIND. There is no fallback:
// either every page of buf comes from node, or the call fails.
func BindStrict(buf []byte, node int) error {
	if len(buf) == 0 {
		return errors.New("numa: empty range")
	}
	mask, err := Nodemask(node)
	if err != nil {
		return err
	}
	_, _, errno := unix.Syscall6(unix.SYS_MBIND,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(mpolBind),
		uintptr(unsafe.Pointer(&mask[0])),
		uintptr(len(mask)*64),
		0)
	if errno != 0 {
		return errors.Wrapf(errno, "numa: mbind(MPOL_BIND, node %d) failed", node)
	}
	return nil
}
