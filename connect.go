package mqtt311

import "fmt"

const protocolName = "MQTT"
const protocolLevel = 4

// fields builds the CONNECT variable-header + payload field list in
// canonical OASIS 3.1.1 order (spec.md §3): protocol name, protocol level,
// flags, keep alive, client ID, then the optional will topic/message,
// username, and password -- each guarded by the matching Flags bit,
// exactly the flag layout axmq-ax/encoding/encoder_311.go's
// ConnectPacket311.Encode builds inline.
func (c *Connect) fields() []fieldSpec {
	return []fieldSpec{
		{name: "protocolName",
			enc: func(w *writer) error { return encodeString(w, c.ProtocolName) },
			dec: func(r *reader) (err error) { c.ProtocolName, err = decodeString(r); return }},
		{name: "protocolLevel",
			enc: func(w *writer) error { w.writeU8(c.ProtocolLevel); return nil },
			dec: func(r *reader) (err error) { c.ProtocolLevel, err = r.readU8(); return }},
		{name: "flags",
			enc: func(w *writer) error { w.writeU8(byte(c.Flags)); return nil },
			dec: func(r *reader) error {
				b, err := r.readU8()
				if err != nil {
					return err
				}
				c.Flags = ConnectFlags(b)
				return nil
			}},
		{name: "keepAlive",
			enc: func(w *writer) error { w.writeU16BE(c.KeepAlive); return nil },
			dec: func(r *reader) (err error) { c.KeepAlive, err = r.readU16BE(); return }},
		{name: "clientID",
			enc: func(w *writer) error { return encodeString(w, c.ClientID) },
			dec: func(r *reader) (err error) { c.ClientID, err = decodeString(r); return }},
		{name: "willTopic", guard: func() bool { return c.Flags.Will() },
			enc: func(w *writer) error { return encodeString(w, c.WillTopic) },
			dec: func(r *reader) (err error) { c.WillTopic, err = decodeString(r); return }},
		{name: "willMessage", guard: func() bool { return c.Flags.Will() },
			enc: func(w *writer) error { return encodeBinary(w, c.WillMessage) },
			dec: func(r *reader) (err error) { c.WillMessage, err = decodeBinary(r); return }},
		{name: "userName", guard: func() bool { return c.Flags.UserName() },
			enc: func(w *writer) error { return encodeString(w, c.UserName) },
			dec: func(r *reader) (err error) { c.UserName, err = decodeString(r); return }},
		{name: "password", guard: func() bool { return c.Flags.Password() },
			enc: func(w *writer) error { return encodeBinary(w, c.Password) },
			dec: func(r *reader) (err error) { c.Password, err = decodeBinary(r); return }},
	}
}

// validate enforces spec.md §4.4.3's CONNECT invariants, shared by Encode
// (as ErrInvalidPacket) and Decode (as ErrProtocolViolation).
func (c *Connect) validate(invalid error) error {
	if c.ProtocolName != protocolName {
		return fmt.Errorf("%w: CONNECT protocol name %q", invalid, c.ProtocolName)
	}
	if c.ProtocolLevel != protocolLevel {
		return fmt.Errorf("%w: CONNECT protocol level %d", invalid, c.ProtocolLevel)
	}
	if err := c.Flags.validate(); err != nil {
		return fmt.Errorf("%w: %v", invalid, err)
	}
	return nil
}

func (c *Connect) size() int {
	w := newWriter(0)
	_ = encodeFields(w, c.fields())
	return w.len()
}

// Encode renders c to its MQTT 3.1.1 wire form.
func (c *Connect) Encode() ([]byte, error) {
	if err := c.validate(ErrInvalidPacket); err != nil {
		return nil, err
	}
	w := newWriter(0)
	if err := encodeFields(w, c.fields()); err != nil {
		return nil, err
	}
	nibble, _ := reservedLowerNibble(CONNECT)
	return assemblePacket(CONNECT, nibble, w.bytes())
}

func decodeConnect(r *reader, fh FixedHeader, trace *tracer) (*Connect, error) {
	c := &Connect{Header: fh}
	if err := decodeFields(r, c.fields(), trace); err != nil {
		return nil, err
	}
	if err := c.validate(ErrProtocolViolation); err != nil {
		return nil, err
	}
	return c, nil
}

// ConnAck

func (a *ConnAck) fields() []fieldSpec {
	return []fieldSpec{
		{name: "flags",
			enc: func(w *writer) error { w.writeU8(byte(a.Flags)); return nil },
			dec: func(r *reader) error {
				b, err := r.readU8()
				if err != nil {
					return err
				}
				a.Flags = ConnAckFlags(b).maskReserved()
				return nil
			}},
		{name: "returnCode",
			enc: func(w *writer) error { w.writeU8(byte(a.ReturnCode)); return nil },
			dec: func(r *reader) error {
				b, err := r.readU8()
				if err != nil {
					return err
				}
				a.ReturnCode = ConnectReturnCode(b)
				return nil
			}},
	}
}

// Encode renders a to its MQTT 3.1.1 wire form.
func (a *ConnAck) Encode() ([]byte, error) {
	w := newWriter(2)
	if err := encodeFields(w, a.fields()); err != nil {
		return nil, err
	}
	nibble, _ := reservedLowerNibble(CONNACK)
	return assemblePacket(CONNACK, nibble, w.bytes())
}

func decodeConnAck(r *reader, fh FixedHeader, trace *tracer) (*ConnAck, error) {
	a := &ConnAck{Header: fh}
	if err := decodeFields(r, a.fields(), trace); err != nil {
		return nil, err
	}
	return a, nil
}
