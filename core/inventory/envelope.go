package inventory

import (
	"github.com/fredericlepied/lshw-normalization/core/errors"
)

// Envelope keys.
const (
	KeyHardware = "hardware"
	KeyNode     = "node"
	KeyData     = "data"
	KeyError    = "error"
)

// DataPath is the field-path prefix of the payload inside the envelope.
// Walkers report every field under this prefix.
const DataPath = KeyHardware + "." + KeyData

// Inventory node fields that mark a data object as genuine lshw output.
const (
	FieldID    = "id"
	FieldClass = "class"
)

// Envelope is the decoded collection wrapper around one inventory node.
type Envelope struct {
	// Node is the collector node identifier, preserved verbatim. It is nil
	// when the source document has no node entry.
	Node any

	// Data is the lshw payload. It always carries "id" and "class".
	Data map[string]any

	// Error is the collection error, preserved verbatim. A missing error
	// entry becomes the empty string.
	Error any
}

// ParseEnvelope checks that doc matches the required envelope shape and
// extracts its parts. The returned error is a *errors.ValidationError
// naming the failed constraint.
func ParseEnvelope(doc any) (*Envelope, error) {
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.NewValidation("document", "not a JSON object")
	}

	wrapper, ok := root[KeyHardware]
	if !ok {
		return nil, errors.NewValidation(KeyHardware, "missing envelope object")
	}

	hardware, ok := wrapper.(map[string]any)
	if !ok {
		return nil, errors.NewValidation(KeyHardware, "not a JSON object")
	}

	payload, ok := hardware[KeyData]
	if !ok {
		return nil, errors.NewValidation("hardware.data", "missing inventory data")
	}

	data, ok := payload.(map[string]any)
	if !ok {
		return nil, errors.NewValidation("hardware.data", "not a JSON object")
	}

	if _, ok := data[FieldID]; !ok {
		return nil, errors.NewValidation("hardware.data", "missing 'id' or 'class' fields")
	}
	if _, ok := data[FieldClass]; !ok {
		return nil, errors.NewValidation("hardware.data", "missing 'id' or 'class' fields")
	}

	env := &Envelope{
		Node:  hardware[KeyNode],
		Data:  data,
		Error: "",
	}
	if errVal, ok := hardware[KeyError]; ok {
		env.Error = errVal
	}
	return env, nil
}

// Rebuild reassembles the envelope document around data. Only the node,
// data, and error entries survive; anything else in the source wrapper, and
// any sibling of the hardware key, is dropped.
func (e *Envelope) Rebuild(data map[string]any) map[string]any {
	return map[string]any{
		KeyHardware: map[string]any{
			KeyNode:  e.Node,
			KeyData:  data,
			KeyError: e.Error,
		},
	}
}
