package mqtt311

import "fmt"

// encodeBinary/decodeBinary frame arbitrary bytes with the same u16
// length prefix as encodeString/decodeString, but without UTF-8
// validation. MQTT 3.1.1 uses this framing for CONNECT's Will Message and
// Password fields (axmq-ax/encoding/properties.go's writeBinaryData/
// readBinaryData is the direct analog).
func encodeBinary(w *writer, b []byte) error {
	if len(b) > 65535 {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(b))
	}
	w.writeU16BE(uint16(len(b)))
	if len(b) > 0 {
		w.writeBytes(b)
	}
	return nil
}

func decodeBinary(r *reader) ([]byte, error) {
	length, err := r.readU16BE()
	if err != nil {
		return nil, fmt.Errorf("%w: binary data length", ErrTruncated)
	}
	if length == 0 {
		return []byte{}, nil
	}
	b, err := r.readBytes(int(length))
	if err != nil {
		return nil, fmt.Errorf("%w: binary data body", ErrTruncated)
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}
