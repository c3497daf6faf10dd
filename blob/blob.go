// Package blob packs large binary payloads for transport inside indexed
// strings: gzip compression followed by unpadded URL-safe base64, the
// conventional envelope for payloads too big to embed raw. The result is
// plain text and travels through Serializer.Str like any other segment.
package blob

import (
	"bytes"
	"encoding/base64"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/wippyai/indexed/errors"
)

// MaxUnpackedSize bounds the decompressed size Unpack will produce.
// Compressed input is attacker-friendly; without a bound a small payload
// can expand enormously.
const MaxUnpackedSize = 128 << 20 // 128 MB

// Pack compresses data and encodes it as URL-safe base64 text.
func Pack(data []byte) (string, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return "", errors.New(errors.PhaseEncode, errors.KindWriteFailure).
			Cause(err).
			Detail("gzip write failed").
			Build()
	}
	if err := w.Close(); err != nil {
		return "", errors.New(errors.PhaseEncode, errors.KindWriteFailure).
			Cause(err).
			Detail("gzip flush failed").
			Build()
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Unpack reverses Pack. It fails if the payload is not valid base64 or
// gzip, or if the decompressed size exceeds MaxUnpackedSize.
func Unpack(packed string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(packed)
	if err != nil {
		return nil, errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Cause(err).
			Detail("payload is not valid URL-safe base64").
			Build()
	}
	r, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Cause(err).
			Detail("payload is not a gzip stream").
			Build()
	}
	defer r.Close()

	data, err := io.ReadAll(io.LimitReader(r, MaxUnpackedSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxUnpackedSize {
		return nil, errors.Overflow(errors.PhaseEncode, len(data), MaxUnpackedSize)
	}
	return data, nil
}
