// internal/writer/writer.go
package writer

import (
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/tamzrod/svs/internal/service"
)

// endpointClient is the exact contract the writer uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}

// statusWriter is the concrete implementation used by svs export.
type statusWriter struct {
	plan Plan
	cli  endpointClient
	log  *zap.Logger

	needFull bool
	last     map[uint16][]uint16 // by block base address
	dirty    map[uint16]bool     // blocks whose last write failed, contents unknown
}

type block struct {
	addr uint16
	name string
	regs []uint16
}

// New builds a status writer. A nil log discards diagnostics.
func New(plan Plan, cli endpointClient, log *zap.Logger) StatusWriter {
	if log == nil {
		log = zap.NewNop()
	}
	return &statusWriter{
		plan:     plan,
		cli:      cli,
		log:      log,
		needFull: true, // full re-assert on first successful write
		last:     make(map[uint16][]uint16),
		dirty:    make(map[uint16]bool),
	}
}

// WriteListing delivers one block per service.
// On any write failure, the next call re-asserts every block in full.
func (sw *statusWriter) WriteListing(l service.Listing, now time.Time) error {
	if sw.cli == nil {
		return errors.Newf("status writer: missing client for endpoint %s", sw.plan.Endpoint)
	}

	blocks := sw.blocks(l, now)
	current := make(map[uint16]bool, len(blocks))

	var errs []string

	for _, b := range blocks {
		current[b.addr] = true

		prev, seen := sw.last[b.addr]

		switch {
		// ------------------------------------------------------------
		// Full block write (identity re-assert)
		// ------------------------------------------------------------
		case sw.needFull || !seen || !equalRegs(prev[LiveSlots:], b.regs[LiveSlots:]):
			if err := sw.cli.WriteRegisters(sw.plan.UnitID, b.addr, b.regs); err != nil {
				errs = append(errs, "full block "+b.name+": "+err.Error())
				sw.forget(b.addr)
				continue
			}

		// ------------------------------------------------------------
		// Live slots only
		// ------------------------------------------------------------
		case !equalRegs(prev[:LiveSlots], b.regs[:LiveSlots]):
			if err := sw.cli.WriteRegisters(sw.plan.UnitID, b.addr, b.regs[:LiveSlots]); err != nil {
				errs = append(errs, "live slots "+b.name+": "+err.Error())
				sw.forget(b.addr)
				continue
			}
		}

		sw.last[b.addr] = b.regs
		delete(sw.dirty, b.addr)
	}

	// Blocks of services that left the listing are cleared, including
	// blocks whose last write failed. An address is released only once
	// the clear succeeds.
	for _, addr := range sw.departed(current) {
		if err := sw.cli.WriteRegisters(sw.plan.UnitID, addr, make([]uint16, SlotsPerService)); err != nil {
			errs = append(errs, "clear block: "+err.Error())
			sw.forget(addr)
			continue
		}
		delete(sw.last, addr)
		delete(sw.dirty, addr)
	}

	if len(errs) > 0 {
		// Any partial failure forces a full re-assert on the next call.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	sw.needFull = false
	return nil
}

// blocks lays out one block per slot, stopping at the end of the address space.
func (sw *statusWriter) blocks(l service.Listing, now time.Time) []block {
	var names []string
	var svcs []*service.ServiceStatus

	if len(sw.plan.Services) > 0 {
		byName := make(map[string]*service.ServiceStatus, len(l.Services))
		for i := range l.Services {
			byName[l.Services[i].Name] = &l.Services[i]
		}
		for _, name := range sw.plan.Services {
			names = append(names, name)
			svcs = append(svcs, byName[name])
		}
	} else {
		for i := range l.Services {
			names = append(names, l.Services[i].Name)
			svcs = append(svcs, &l.Services[i])
		}
	}

	out := make([]block, 0, len(names))
	for i := range names {
		addr := (int(sw.plan.BaseSlot) + i) * SlotsPerService
		if addr+SlotsPerService-1 > 0xFFFF {
			sw.log.Warn("status block beyond register space, dropping remaining services",
				zap.String("service", names[i]),
				zap.Int("dropped", len(names)-i),
			)
			break
		}
		out = append(out, block{
			addr: uint16(addr),
			name: names[i],
			regs: EncodeBlock(names[i], svcs[i], now),
		})
	}
	return out
}

// forget drops the cached image of a block but keeps its address owned.
func (sw *statusWriter) forget(addr uint16) {
	delete(sw.last, addr)
	sw.dirty[addr] = true
}

// departed lists owned addresses not present in current, lowest first.
func (sw *statusWriter) departed(current map[uint16]bool) []uint16 {
	var out []uint16
	for addr := range sw.last {
		if !current[addr] {
			out = append(out, addr)
		}
	}
	for addr := range sw.dirty {
		if _, cached := sw.last[addr]; !cached && !current[addr] {
			out = append(out, addr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func equalRegs(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
