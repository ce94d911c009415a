package mqtt311

import (
	"errors"
	"fmt"
)

// Packet is any of the 14 MQTT 3.1.1 control packet types.
type Packet interface {
	Encode() ([]byte, error)
}

// assemblePacket prepends the fixed header -- type/flags byte and Remaining
// Length VLQ -- to an already-encoded variable-header+payload body. Shared
// by every packet variant's Encode method, generalizing the fixed-header
// prefix axmq-ax/encoding/encoder_311.go's per-packet Encode methods each
// build inline.
func assemblePacket(t PacketType, nibble byte, body []byte) ([]byte, error) {
	if len(body) > int(MaxRemainingLength) {
		return nil, fmt.Errorf("%w: body of %d bytes", ErrPayloadTooLarge, len(body))
	}
	rl, err := EncodeRemainingLength(uint32(len(body)))
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 1+len(rl)+len(body))
	out = append(out, byte(t)<<4|nibble)
	out = append(out, rl...)
	out = append(out, body...)
	return out, nil
}

// Encode renders p to its MQTT 3.1.1 wire form. It is a thin wrapper over
// p.Encode(); exported as a free function so callers can treat Packet
// values uniformly instead of type-switching to call the method.
func Encode(p Packet) ([]byte, error) {
	return p.Encode()
}

// Size returns the exact number of bytes Encode(p) would produce, without
// retaining the encoded buffer.
func Size(p Packet) (int, error) {
	data, err := p.Encode()
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

// Decode parses exactly one control packet from the front of data. On
// success it returns the decoded Packet and the number of bytes consumed;
// on ErrTruncated the caller should accumulate more bytes and retry
// (spec.md §6). The returned error is always one of the sentinels in
// errors.go, reachable with errors.Is.
func Decode(data []byte, opts ...DecodeOption) (Packet, int, error) {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	hr := newReader(data)
	b0, err := hr.readU8()
	if err != nil {
		return nil, 0, err
	}

	typ := PacketType(b0 >> 4)
	lowerNibble := b0 & 0x0F
	if typ == Reserved1 || typ == Reserved2 {
		return nil, 0, fmt.Errorf("%w: type %d", ErrReservedPacketType, typ)
	}

	fh := FixedHeader{Type: typ}
	if typ == PUBLISH {
		fh.DUP = lowerNibble&0x08 != 0
		fh.QoS = QoSLevel(lowerNibble&0x06) >> 1
		fh.Retain = lowerNibble&0x01 != 0
		// QoS=3 is not a malformed fixed header -- it's a PUBLISH-specific
		// protocol violation (spec.md §4.4.3), reported by decodePublish's
		// validate() so callers can distinguish it from ErrMalformedFixedHeader.
	} else if want, _ := reservedLowerNibble(typ); lowerNibble != want {
		return nil, 0, fmt.Errorf("%w: %s flags 0x%x, want 0x%x", ErrMalformedFixedHeader, typ, lowerNibble, want)
	}

	remainingLength, err := DecodeRemainingLength(hr)
	if err != nil {
		return nil, 0, err
	}
	fh.RemainingLength = remainingLength

	headerLen := hr.pos
	total := headerLen + int(remainingLength)
	if len(data) < total {
		return nil, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, total, len(data))
	}

	cfg.trace.start(typ, remainingLength)
	body := newReader(data[headerLen:total])

	pkt, err := decodeBody(body, fh, &cfg.trace)
	if err != nil {
		cfg.trace.fail(err)
		return nil, 0, err
	}
	if body.remaining() != 0 {
		err := fmt.Errorf("%w: %d unconsumed bytes", ErrTrailingBytes, body.remaining())
		cfg.trace.fail(err)
		return nil, 0, err
	}
	return pkt, total, nil
}

func decodeBody(r *reader, fh FixedHeader, trace *tracer) (Packet, error) {
	switch fh.Type {
	case CONNECT:
		return decodeConnect(r, fh, trace)
	case CONNACK:
		return decodeConnAck(r, fh, trace)
	case PUBLISH:
		return decodePublish(r, fh, trace)
	case PUBACK:
		return decodePubAck(r, fh, trace)
	case PUBREC:
		return decodePubRec(r, fh, trace)
	case PUBREL:
		return decodePubRel(r, fh, trace)
	case PUBCOMP:
		return decodePubComp(r, fh, trace)
	case SUBSCRIBE:
		return decodeSubscribe(r, fh, trace)
	case SUBACK:
		return decodeSubAck(r, fh, trace)
	case UNSUBSCRIBE:
		return decodeUnsubscribe(r, fh, trace)
	case UNSUBACK:
		return decodeUnsubAck(r, fh, trace)
	case PINGREQ:
		return decodePingReq(fh)
	case PINGRESP:
		return decodePingResp(fh)
	case DISCONNECT:
		return decodeDisconnect(fh)
	default:
		return nil, fmt.Errorf("%w: type %d", ErrReservedPacketType, fh.Type)
	}
}

// DecodeStream repeatedly decodes packets from the front of data until a
// full packet can no longer be parsed, returning every packet decoded and
// the total number of bytes consumed. Running out of data mid-packet is
// not an error: the caller sees however many packets were available and is
// expected to append more bytes and call DecodeStream again, per spec.md
// §6's accumulate-and-retry consumer contract. Any error other than
// ErrTruncated aborts immediately and is returned alongside the packets
// decoded so far.
func DecodeStream(data []byte, opts ...DecodeOption) ([]Packet, int, error) {
	var packets []Packet
	consumed := 0
	for consumed < len(data) {
		pkt, n, err := Decode(data[consumed:], opts...)
		if err != nil {
			if errors.Is(err, ErrTruncated) {
				return packets, consumed, nil
			}
			return packets, consumed, err
		}
		packets = append(packets, pkt)
		consumed += n
	}
	return packets, consumed, nil
}
