package serializable

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	// Pair - single key/value entry of Map.
	Pair struct {
		Key   string
		Value any
	}

	// Map - ordered serialized representation of a Popo.
	Map []Pair
)

// Len _ .
func (m Map) Len() int { return len(m) }

// Keys - keys in order.
func (m Map) Keys() []string {
	return lo.Map(m, func(p Pair, _ int) string { return p.Key })
}

// Get - value by key; ok is false if key is absent (a nil value with ok == true means null).
func (m Map) Get(key string) (any, bool) {
	p, ok := lo.Find(m, func(p Pair) bool { return p.Key == key })

	return p.Value, ok
}

// Has _ .
func (m Map) Has(key string) bool {
	_, ok := m.Get(key)

	return ok
}

// MarshalJSON - JSON object with keys in Map order.
func (m Map) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, p := range m {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(p.Key)
		stream.WriteVal(p.Value)
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}

	return append([]byte(nil), stream.Buffer()...), nil
}
