package mqtt311

import "fmt"

// fields builds PUBLISH's variable-header field list: topic name, then
// packetId guarded on Header.QoS > QoS0, per spec.md §3's resolution of the
// Open Question in §9 (packetId conditional on QoS, payload is the
// remainder of the body). The payload itself is handled separately in
// Encode/decodePublish since it is the Bytes(len=rest) kind, not a
// guarded fieldSpec (there is nothing left to guard against once every
// other field has been consumed).
func (p *Publish) fields() []fieldSpec {
	hasPacketID := func() bool { return p.Header.QoS > QoS0 }
	return []fieldSpec{
		{name: "topicName",
			enc: func(w *writer) error { return encodeString(w, p.TopicName) },
			dec: func(r *reader) (err error) { p.TopicName, err = decodeString(r); return }},
		{name: "packetID", guard: hasPacketID,
			enc: func(w *writer) error { w.writeU16BE(p.PacketID); return nil },
			dec: func(r *reader) (err error) { p.PacketID, err = r.readU16BE(); return }},
	}
}

// validate enforces spec.md §4.4.3's PUBLISH invariants: QoS must not be
// the reserved value 3, and DUP must be clear when QoS is AtMostOnce
// (there is nothing to retransmit at QoS 0).
func (p *Publish) validate(invalid error) error {
	if !p.Header.QoS.IsValid() {
		return fmt.Errorf("%w: PUBLISH QoS reserved value", invalid)
	}
	if p.Header.QoS == QoS0 && p.Header.DUP {
		return fmt.Errorf("%w: PUBLISH DUP set at QoS0", invalid)
	}
	return nil
}

func publishLowerNibble(h FixedHeader) byte {
	var b byte
	if h.DUP {
		b |= 0x08
	}
	b |= byte(h.QoS) << 1
	if h.Retain {
		b |= 0x01
	}
	return b
}

// Encode renders p to its MQTT 3.1.1 wire form.
func (p *Publish) Encode() ([]byte, error) {
	if err := p.validate(ErrInvalidPacket); err != nil {
		return nil, err
	}
	w := newWriter(2 + len(p.TopicName) + len(p.Payload))
	if err := encodeFields(w, p.fields()); err != nil {
		return nil, err
	}
	w.writeBytes(p.Payload)
	return assemblePacket(PUBLISH, publishLowerNibble(p.Header), w.bytes())
}

func decodePublish(r *reader, fh FixedHeader, trace *tracer) (*Publish, error) {
	p := &Publish{Header: fh}
	if err := p.validate(ErrProtocolViolation); err != nil {
		return nil, err
	}
	if err := decodeFields(r, p.fields(), trace); err != nil {
		return nil, err
	}
	payload := r.readRest()
	p.Payload = append([]byte(nil), payload...)
	return p, nil
}
