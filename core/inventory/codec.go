package inventory

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/zeebo/blake3"

	"github.com/fredericlepied/lshw-normalization/core/errors"
)

// jsonMarshal is a variable to allow testing of marshal errors.
var jsonMarshal = json.Marshal

// Decode parses JSON text into a generic value. Numbers decode as
// json.Number so their literals survive re-encoding unchanged.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.NewParse("JSON", "", "trailing data after document")
	}
	return doc, nil
}

// Encode serializes v the way normalized files are written: two-space
// indent, sorted object keys, no HTML escaping, one trailing newline.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Digest returns the BLAKE3 hash of v's compact JSON serialization as a
// hex string. Comparing digests before and after normalization is how a
// document is flagged modified.
func Digest(v any) (string, error) {
	data, err := jsonMarshal(v)
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
