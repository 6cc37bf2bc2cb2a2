// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"fmt"

	"github.com/momentics/hugealloc/api"
)

// Registrar hands out deterministic lkeys and records every call.
type Registrar struct {
	// FailNext makes the next RegMR fail once, simulating a transport
	// registration error.
	FailNext bool

	// Registered records the byte length of each registered range.
	Registered []int

	// Deregistered records lkeys passed to DeregMR, in call order.
	Deregistered []uint32

	nextLKey uint32
}

var _ api.Registrar = (*Registrar)(nil)

// RegMR implements api.Registrar.
func (r *Registrar) RegMR(buf []byte) (api.MemRegInfo, error) {
	if r.FailNext {
		r.FailNext = false
		return api.MemRegInfo{}, fmt.Errorf("fake: registration rejected")
	}
	r.nextLKey++
	r.Registered = append(r.Registered, len(buf))
	return api.MemRegInfo{LKey: r.nextLKey, Token: len(r.Registered) - 1}, nil
}

// DeregMR implements api.Registrar.
func (r *Registrar) DeregMR(info api.MemRegInfo) {
	r.Deregistered = append(r.Deregistered, info.LKey)
}
