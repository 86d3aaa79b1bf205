package json

import (
	"github.com/pkg/errors"

	"github.com/imperiuse/popo/serializable"
)

// Payload - Popo ready to be written as JSON body; Test switches keys to snake_case.
type Payload struct {
	Popo serializable.Popo
	Test bool
}

var _ serializable.Marshaler = Payload{}

// Marshal - JSON bytes of the Payload Popo, keys in schema order.
func (p Payload) Marshal() ([]byte, error) {
	kc := serializable.AsDeclared
	if p.Test {
		kc = serializable.SnakeCase
	}

	m, err := serializable.Encode(p.Popo, kc)
	if err != nil {
		return nil, errors.Wrap(err, "serializable.Encode")
	}

	return m.MarshalJSON()
}

// Marshal - JSON with keys as declared.
func Marshal(p serializable.Popo) ([]byte, error) {
	return Payload{Popo: p}.Marshal()
}

// MarshalTest - JSON with snake_case keys.
func MarshalTest(p serializable.Popo) ([]byte, error) {
	return Payload{Popo: p, Test: true}.Marshal()
}
