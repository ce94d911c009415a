package mqtt311

import "fmt"

// Subscribe

func (s *Subscribe) fields() []fieldSpec {
	return []fieldSpec{
		{name: "packetID",
			enc: func(w *writer) error { w.writeU16BE(s.PacketID); return nil },
			dec: func(r *reader) (err error) { s.PacketID, err = r.readU16BE(); return }},
	}
}

func (s *Subscribe) validate(invalid error) error {
	if len(s.Topics) == 0 {
		return fmt.Errorf("%w: SUBSCRIBE with no topic filters", invalid)
	}
	for _, t := range s.Topics {
		if !t.QoS.IsValid() {
			return fmt.Errorf("%w: SUBSCRIBE topic %q requested reserved QoS", invalid, t.Filter)
		}
	}
	return nil
}

// Encode renders s to its MQTT 3.1.1 wire form.
func (s *Subscribe) Encode() ([]byte, error) {
	if err := s.validate(ErrInvalidPacket); err != nil {
		return nil, err
	}
	w := newWriter(2 + 3*len(s.Topics))
	if err := encodeFields(w, s.fields()); err != nil {
		return nil, err
	}
	for _, t := range s.Topics {
		if err := encodeString(w, t.Filter); err != nil {
			return nil, err
		}
		w.writeU8(byte(t.QoS))
	}
	nibble, _ := reservedLowerNibble(SUBSCRIBE)
	return assemblePacket(SUBSCRIBE, nibble, w.bytes())
}

// decodeSubscribe reads the fixed packetId field, then a list of
// topic-filter/QoS pairs filling the rest of the body: spec.md §3's
// List<Topic> kind has no explicit count prefix, so the list runs until
// the reader is exhausted (mirroring axmq-ax/encoding/packets_mqtt5.go's
// ParseSubscribePacket loop-to-EOF).
func decodeSubscribe(r *reader, fh FixedHeader, trace *tracer) (*Subscribe, error) {
	s := &Subscribe{Header: fh}
	if err := decodeFields(r, s.fields(), trace); err != nil {
		return nil, err
	}
	for r.remaining() > 0 {
		filter, err := decodeString(r)
		if err != nil {
			return nil, err
		}
		qosByte, err := r.readU8()
		if err != nil {
			return nil, err
		}
		s.Topics = append(s.Topics, Topic{Filter: filter, QoS: QoSLevel(qosByte)})
	}
	if err := s.validate(ErrProtocolViolation); err != nil {
		return nil, err
	}
	return s, nil
}

// SubAck

func (a *SubAck) fields() []fieldSpec {
	return []fieldSpec{
		{name: "packetID",
			enc: func(w *writer) error { w.writeU16BE(a.PacketID); return nil },
			dec: func(r *reader) (err error) { a.PacketID, err = r.readU16BE(); return }},
	}
}

func (a *SubAck) validate(invalid error) error {
	if len(a.ReturnCodes) == 0 {
		return fmt.Errorf("%w: SUBACK with no return codes", invalid)
	}
	for _, rc := range a.ReturnCodes {
		if !rc.IsValid() {
			return fmt.Errorf("%w: SUBACK unknown return code 0x%02x", invalid, byte(rc))
		}
	}
	return nil
}

// Encode renders a to its MQTT 3.1.1 wire form.
func (a *SubAck) Encode() ([]byte, error) {
	if err := a.validate(ErrInvalidPacket); err != nil {
		return nil, err
	}
	w := newWriter(2 + len(a.ReturnCodes))
	if err := encodeFields(w, a.fields()); err != nil {
		return nil, err
	}
	for _, rc := range a.ReturnCodes {
		w.writeU8(byte(rc))
	}
	nibble, _ := reservedLowerNibble(SUBACK)
	return assemblePacket(SUBACK, nibble, w.bytes())
}

func decodeSubAck(r *reader, fh FixedHeader, trace *tracer) (*SubAck, error) {
	a := &SubAck{Header: fh}
	if err := decodeFields(r, a.fields(), trace); err != nil {
		return nil, err
	}
	for r.remaining() > 0 {
		b, err := r.readU8()
		if err != nil {
			return nil, err
		}
		a.ReturnCodes = append(a.ReturnCodes, SubscribeReturnCode(b))
	}
	if err := a.validate(ErrProtocolViolation); err != nil {
		return nil, err
	}
	return a, nil
}

// Unsubscribe

func (u *Unsubscribe) fields() []fieldSpec {
	return []fieldSpec{
		{name: "packetID",
			enc: func(w *writer) error { w.writeU16BE(u.PacketID); return nil },
			dec: func(r *reader) (err error) { u.PacketID, err = r.readU16BE(); return }},
	}
}

func (u *Unsubscribe) validate(invalid error) error {
	if len(u.Filters) == 0 {
		return fmt.Errorf("%w: UNSUBSCRIBE with no topic filters", invalid)
	}
	return nil
}

// Encode renders u to its MQTT 3.1.1 wire form.
func (u *Unsubscribe) Encode() ([]byte, error) {
	if err := u.validate(ErrInvalidPacket); err != nil {
		return nil, err
	}
	w := newWriter(2 + 2*len(u.Filters))
	if err := encodeFields(w, u.fields()); err != nil {
		return nil, err
	}
	for _, f := range u.Filters {
		if err := encodeString(w, f); err != nil {
			return nil, err
		}
	}
	nibble, _ := reservedLowerNibble(UNSUBSCRIBE)
	return assemblePacket(UNSUBSCRIBE, nibble, w.bytes())
}

func decodeUnsubscribe(r *reader, fh FixedHeader, trace *tracer) (*Unsubscribe, error) {
	u := &Unsubscribe{Header: fh}
	if err := decodeFields(r, u.fields(), trace); err != nil {
		return nil, err
	}
	for r.remaining() > 0 {
		filter, err := decodeString(r)
		if err != nil {
			return nil, err
		}
		u.Filters = append(u.Filters, filter)
	}
	if err := u.validate(ErrProtocolViolation); err != nil {
		return nil, err
	}
	return u, nil
}
