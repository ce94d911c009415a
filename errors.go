package mqtt311

import "errors"

// Sentinel errors returned by Encode and Decode. Callers distinguish them
// with errors.Is; each is wrapped with additional context via fmt.Errorf
// at the point of detection.
var (
	// ErrTruncated indicates the input ended mid-field. On Decode the
	// caller may accumulate more bytes from the transport and retry.
	ErrTruncated = errors.New("mqtt311: truncated packet")

	// ErrMalformedLength indicates a Remaining Length VLQ exceeded 4
	// continuation bytes or was never terminated.
	ErrMalformedLength = errors.New("mqtt311: malformed remaining length")

	// ErrReservedPacketType indicates a fixed header declared packet
	// type 0 (reserved) or 15 (reserved).
	ErrReservedPacketType = errors.New("mqtt311: reserved packet type")

	// ErrMalformedFixedHeader indicates the fixed header's lower-nibble
	// flags did not match the mask required for that packet type.
	ErrMalformedFixedHeader = errors.New("mqtt311: malformed fixed header")

	// ErrBadUTF8 indicates a string field was not well-formed UTF-8, or
	// contained a code point MQTT disallows (NUL, UTF-16 surrogate,
	// non-character).
	ErrBadUTF8 = errors.New("mqtt311: invalid UTF-8 string")

	// ErrStringTooLong indicates a string exceeds the 65535-byte wire
	// limit. Encode-only.
	ErrStringTooLong = errors.New("mqtt311: string exceeds 65535 bytes")

	// ErrPayloadTooLarge indicates the encoded variable header + payload
	// exceeds the maximum representable Remaining Length. Encode-only.
	ErrPayloadTooLarge = errors.New("mqtt311: encoded body exceeds remaining length maximum")

	// ErrTrailingBytes indicates a variant's field list consumed fewer
	// bytes than Remaining Length declared.
	ErrTrailingBytes = errors.New("mqtt311: trailing bytes after packet body")

	// ErrProtocolViolation indicates a variant-specific invariant was
	// violated on decode (see spec.md §4.4.3).
	ErrProtocolViolation = errors.New("mqtt311: protocol violation")

	// ErrInvalidPacket is the encode-side equivalent of
	// ErrProtocolViolation: the caller supplied a packet value whose
	// fields are mutually inconsistent.
	ErrInvalidPacket = errors.New("mqtt311: invalid packet value")
)
