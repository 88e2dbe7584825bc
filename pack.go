package serialization

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// packer builds a MsgPack field-map with a deterministic key order. Keys
// are appended in the order the encoder adds them; decoders on the other
// side make no ordering assumption.
type packer struct {
	keys   []string
	values []any
}

func newPacker() *packer {
	return &packer{}
}

func (p *packer) putString(key, value string) {
	p.keys = append(p.keys, key)
	p.values = append(p.values, value)
}

func (p *packer) putUint(key string, value uint64) {
	p.keys = append(p.keys, key)
	p.values = append(p.values, value)
}

func (p *packer) putBool(key string, value bool) {
	p.keys = append(p.keys, key)
	p.values = append(p.values, value)
}

func (p *packer) putBytes(key string, value []byte) {
	p.keys = append(p.keys, key)
	p.values = append(p.values, value)
}

func (p *packer) putStringMap(key string, value map[string]string) {
	p.keys = append(p.keys, key)
	p.values = append(p.values, value)
}

// bytes frames the collected fields as a MsgPack map.
func (p *packer) bytes() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeMapLen(len(p.keys)); err != nil {
		return nil, err
	}
	for i, key := range p.keys {
		if err := enc.EncodeString(key); err != nil {
			return nil, err
		}
		var err error
		switch v := p.values[i].(type) {
		case string:
			err = enc.EncodeString(v)
		case uint64:
			err = enc.EncodeUint(v)
		case bool:
			err = enc.EncodeBool(v)
		case []byte:
			err = enc.EncodeBytes(v)
		case map[string]string:
			err = encodeStringMap(enc, v)
		default:
			err = fmt.Errorf("unsupported field type %T", v)
		}
		if err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func encodeStringMap(enc *msgpack.Encoder, m map[string]string) error {
	if err := enc.EncodeMapLen(len(m)); err != nil {
		return err
	}
	for key, value := range m {
		if err := enc.EncodeString(key); err != nil {
			return err
		}
		if err := enc.EncodeString(value); err != nil {
			return err
		}
	}
	return nil
}
