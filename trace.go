package mqtt311

import "log/slog"

// tracer is the opt-in decode diagnostic logger described in SPEC_FULL.md's
// ambient-stack section. It is a thin pass-through over *slog.Logger
// (adapted down from axmq-ax/pkg/logger's ColoredHandler, which wraps
// log/slog the same way) rather than a reimplementation of the teacher's
// colored-terminal handler -- the codec only needs "optionally attach a
// logger", not a bespoke rendering format.
//
// A zero-value tracer is a no-op, so Decode remains the synchronous,
// side-effect-free function spec.md §5 requires unless a caller opts in.
type tracer struct {
	logger *slog.Logger
	typ    PacketType
}

func (t *tracer) start(typ PacketType, remainingLength uint32) {
	if t == nil || t.logger == nil {
		return
	}
	t.typ = typ
	t.logger.Debug("mqtt311: decode start", slog.String("type", typ.String()), slog.Uint64("remaining_length", uint64(remainingLength)))
}

func (t *tracer) field(name string, bytesConsumed int) {
	if t == nil || t.logger == nil {
		return
	}
	t.logger.Debug("mqtt311: decode field", slog.String("type", t.typ.String()), slog.String("field", name), slog.Int("bytes", bytesConsumed))
}

func (t *tracer) fail(err error) {
	if t == nil || t.logger == nil || err == nil {
		return
	}
	t.logger.Debug("mqtt311: decode failed", slog.String("type", t.typ.String()), slog.Any("error", err))
}

// DecodeOption configures a single Decode call.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	trace tracer
}

// WithLogger attaches a *slog.Logger that receives Debug-level traces of
// the decode start, every entry of the packet's field list, and any
// failure. The PUBLISH payload and the entries of SUBSCRIBE, SUBACK and
// UNSUBSCRIBE lists are not traced individually. Without this option
// Decode performs no logging at all.
func WithLogger(logger *slog.Logger) DecodeOption {
	return func(c *decodeConfig) {
		c.trace.logger = logger
	}
}
