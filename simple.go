package mqtt311

import "fmt"

// packetIDOnly encodes/decodes the five MQTT 3.1.1 packets whose entire
// body is a single PacketID field: PUBACK, PUBREC, PUBREL, PUBCOMP, and
// UNSUBACK. Grounded on axmq-ax/encoding/encoder_311.go's near-identical
// PubackPacket311/PubrecPacket311/PubrelPacket311/PubcompPacket311.Encode
// bodies, which differ from each other only in the fixed-header type/flags.
func packetIDOnlyFields(id *uint16) []fieldSpec {
	return []fieldSpec{
		{name: "packetID",
			enc: func(w *writer) error { w.writeU16BE(*id); return nil },
			dec: func(r *reader) (err error) { *id, err = r.readU16BE(); return }},
	}
}

func encodePacketIDOnly(t PacketType, id uint16) ([]byte, error) {
	w := newWriter(2)
	if err := encodeFields(w, packetIDOnlyFields(&id)); err != nil {
		return nil, err
	}
	nibble, _ := reservedLowerNibble(t)
	return assemblePacket(t, nibble, w.bytes())
}

func decodePacketIDOnly(r *reader, trace *tracer) (uint16, error) {
	var id uint16
	if err := decodeFields(r, packetIDOnlyFields(&id), trace); err != nil {
		return 0, err
	}
	return id, nil
}

func (p *PubAck) Encode() ([]byte, error) { return encodePacketIDOnly(PUBACK, p.PacketID) }
func (p *PubRec) Encode() ([]byte, error) { return encodePacketIDOnly(PUBREC, p.PacketID) }
func (p *PubRel) Encode() ([]byte, error) { return encodePacketIDOnly(PUBREL, p.PacketID) }
func (p *PubComp) Encode() ([]byte, error) { return encodePacketIDOnly(PUBCOMP, p.PacketID) }
func (p *UnsubAck) Encode() ([]byte, error) { return encodePacketIDOnly(UNSUBACK, p.PacketID) }

func decodePubAck(r *reader, fh FixedHeader, trace *tracer) (*PubAck, error) {
	id, err := decodePacketIDOnly(r, trace)
	if err != nil {
		return nil, err
	}
	return &PubAck{Header: fh, PacketID: id}, nil
}

func decodePubRec(r *reader, fh FixedHeader, trace *tracer) (*PubRec, error) {
	id, err := decodePacketIDOnly(r, trace)
	if err != nil {
		return nil, err
	}
	return &PubRec{Header: fh, PacketID: id}, nil
}

func decodePubRel(r *reader, fh FixedHeader, trace *tracer) (*PubRel, error) {
	id, err := decodePacketIDOnly(r, trace)
	if err != nil {
		return nil, err
	}
	return &PubRel{Header: fh, PacketID: id}, nil
}

func decodePubComp(r *reader, fh FixedHeader, trace *tracer) (*PubComp, error) {
	id, err := decodePacketIDOnly(r, trace)
	if err != nil {
		return nil, err
	}
	return &PubComp{Header: fh, PacketID: id}, nil
}

func decodeUnsubAck(r *reader, fh FixedHeader, trace *tracer) (*UnsubAck, error) {
	id, err := decodePacketIDOnly(r, trace)
	if err != nil {
		return nil, err
	}
	return &UnsubAck{Header: fh, PacketID: id}, nil
}

// checkEmptyBody is shared by PINGREQ, PINGRESP, and DISCONNECT: all three
// carry no variable header or payload, so Remaining Length must be 0
// (spec.md §3, §4.4.3).
func checkEmptyBody(fh FixedHeader) error {
	if fh.RemainingLength != 0 {
		return fmt.Errorf("%w: expected empty body, remaining length %d", ErrProtocolViolation, fh.RemainingLength)
	}
	return nil
}

func (p *PingReq) Encode() ([]byte, error) {
	nibble, _ := reservedLowerNibble(PINGREQ)
	return assemblePacket(PINGREQ, nibble, nil)
}

func (p *PingResp) Encode() ([]byte, error) {
	nibble, _ := reservedLowerNibble(PINGRESP)
	return assemblePacket(PINGRESP, nibble, nil)
}

func (p *Disconnect) Encode() ([]byte, error) {
	nibble, _ := reservedLowerNibble(DISCONNECT)
	return assemblePacket(DISCONNECT, nibble, nil)
}

func decodePingReq(fh FixedHeader) (*PingReq, error) {
	if err := checkEmptyBody(fh); err != nil {
		return nil, err
	}
	return &PingReq{Header: fh}, nil
}

func decodePingResp(fh FixedHeader) (*PingResp, error) {
	if err := checkEmptyBody(fh); err != nil {
		return nil, err
	}
	return &PingResp{Header: fh}, nil
}

func decodeDisconnect(fh FixedHeader) (*Disconnect, error) {
	if err := checkEmptyBody(fh); err != nil {
		return nil, err
	}
	return &Disconnect{Header: fh}, nil
}
