// internal/writer/encode.go
package writer

import (
	"time"

	"github.com/tamzrod/svs/internal/service"
)

// EncodeBlock converts one service into a full status block.
// A nil svc encodes an absent service under name.
// No IO. No side effects.
func EncodeBlock(name string, svc *service.ServiceStatus, now time.Time) []uint16 {
	regs := make([]uint16, SlotsPerService)

	// Slots 6..10 and 19 are RESERVED → left as zero
	copy(regs[SlotNameStart:SlotNameEnd+1], encodeNameRegs(name))

	if svc == nil {
		regs[SlotState] = CodeAbsent
		regs[SlotLogState] = CodeAbsent
		return regs
	}

	regs[SlotState] = StateCode(svc.State())
	regs[SlotLogState] = CodeAbsent

	var flags uint16
	if svc.Record != nil && svc.NormallyUp {
		flags |= FlagNormallyUp
	}
	if svc.Log != nil {
		flags |= FlagHasLog
		regs[SlotLogState] = StateCode(svc.Log.State())
		if svc.Log.Record != nil && svc.Log.NormallyUp {
			flags |= FlagLogNormallyUp
		}
	}
	regs[SlotFlags] = flags

	if rec := svc.Record; rec != nil {
		secs := int64(rec.Age(now) / time.Second)
		if secs > MaxSecondsInState {
			secs = MaxSecondsInState
		}
		regs[SlotSecondsInState] = uint16(secs)

		if rec.HasProcess() {
			regs[SlotPIDHigh] = uint16(rec.PID >> 16)
			regs[SlotPIDLow] = uint16(rec.PID)
		}
	}

	return regs
}

// encodeNameRegs packs up to 16 ASCII characters into 8 uint16 registers.
// Each register stores two ASCII bytes in big-endian order.
func encodeNameRegs(name string) []uint16 {
	out := make([]uint16, SlotNameSlots)

	b := []byte(name)
	if len(b) > NameMaxChars {
		b = b[:NameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < NameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}
