package mqtt311

// fieldSpec is one entry in a packet variant's ordered field list
// (spec.md §4.4): a name for diagnostics/tracing, an optional guard
// closing over already-decoded (or being-encoded) state, and the encode
// and decode actions for that one field. The same list drives both
// directions, which is how encode and decode stay byte-for-byte
// symmetric without hand-duplicating the conditional logic — the
// "explicit-table approach" spec.md §9 recommends over 14 independent
// hand-written encode/decode pairs.
//
// This generalizes axmq-ax/encoding/packets_mqtt5.go's Parse<X>Packet /
// (*X) Encode pairs, which already share low-level field helpers but
// duplicate the guard conditions (WillFlag, UsernameFlag, ...) between
// the two directions; here each guard is written once.
type fieldSpec struct {
	name  string
	guard func() bool
	enc   func(w *writer) error
	dec   func(r *reader) error
}

func encodeFields(w *writer, fields []fieldSpec) error {
	for _, f := range fields {
		if f.guard != nil && !f.guard() {
			continue
		}
		if err := f.enc(w); err != nil {
			return err
		}
	}
	return nil
}

func decodeFields(r *reader, fields []fieldSpec, trace *tracer) error {
	for _, f := range fields {
		if f.guard != nil && !f.guard() {
			continue
		}
		before := r.remaining()
		if err := f.dec(r); err != nil {
			return err
		}
		trace.field(f.name, before-r.remaining())
	}
	return nil
}
