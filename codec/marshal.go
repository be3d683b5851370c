package codec

import (
	"bytes"
	"encoding/json"

	"github.com/neuronlabs/sideload/errors"
)

// Default document key names.
const (
	// DefaultDataKey is the default key under which the primary data is marshaled.
	DefaultDataKey = "data"
	// DefaultIncludedKey is the default key under which the sideloaded records are marshaled.
	DefaultIncludedKey = "included"
)

// MarshalOptions is a structure that contains document marshaling information.
type MarshalOptions struct {
	// DataKey is the document key for the primary data. Defaults to 'data'.
	DataKey string
	// IncludedKey is the document key for the sideloaded records. Defaults to 'included'.
	IncludedKey string
}

// MarshalDocument marshals provided document with given options 'o'. The
// primary data key is always written first, the included key second, so the
// output is byte for byte deterministic for a deterministic document.
// The included collection is always present, as an empty array when nothing
// was sideloaded.
func MarshalDocument(d *Document, o MarshalOptions) ([]byte, error) {
	if d == nil {
		return nil, errors.WrapDet(ErrMarshal, "provided nil document to marshal")
	}
	dataKey := o.DataKey
	if dataKey == "" {
		dataKey = DefaultDataKey
	}
	includedKey := o.IncludedKey
	if includedKey == "" {
		includedKey = DefaultIncludedKey
	}

	var data interface{}
	switch {
	case d.Single:
		if len(d.Data) != 0 {
			data = d.Data[0]
		}
	case d.Data == nil:
		data = []*Record{}
	default:
		data = d.Data
	}
	included := d.Included
	if included == nil {
		included = []*Record{}
	}

	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	if err := writeKeyValue(buf, dataKey, data); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeKeyValue(buf, includedKey, included); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKeyValue(buf *bytes.Buffer, key string, value interface{}) error {
	name, err := json.Marshal(key)
	if err != nil {
		return errors.WrapDetf(ErrMarshal, "marshaling document key: '%s' failed: %v", key, err)
	}
	buf.Write(name)
	buf.WriteByte(':')

	marshaled, err := json.Marshal(value)
	if err != nil {
		return errors.WrapDetf(ErrMarshal, "marshaling document value for key: '%s' failed: %v", key, err)
	}
	buf.Write(marshaled)
	return nil
}
