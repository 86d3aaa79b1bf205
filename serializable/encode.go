package serializable

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// KeyCase - how field names become map keys.
type KeyCase uint8

const (
	// AsDeclared keeps field names as written in the schema.
	AsDeclared KeyCase = iota
	// SnakeCase converts field names to snake_case, used for test fixtures.
	SnakeCase
)

var (
	// ErrFieldRead - declared field can't be read.
	ErrFieldRead = errors.New("field can't be read")
	// ErrNilPopo - nothing to serialize at the root.
	ErrNilPopo = errors.New("nil popo")
)

// FieldError - read failure of a field; Path is dotted from the root object.
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrFieldRead, e.Path)
	}

	return fmt.Sprintf("%s: %s: %s", ErrFieldRead, e.Path, e.Err)
}

// Unwrap _ .
func (e *FieldError) Unwrap() error { return e.Err }

// Is - every FieldError is an ErrFieldRead.
func (e *FieldError) Is(target error) bool { return target == ErrFieldRead }

// ToMap - serialize with field names as declared.
func ToMap(p Popo) (Map, error) {
	return Encode(p, AsDeclared)
}

// ToTestMap - serialize with snake_case keys, for comparing against fixtures.
func ToTestMap(p Popo) (Map, error) {
	return Encode(p, SnakeCase)
}

// Encode - serialize public fields of p recursively. Any unreadable field fails the whole call.
// Nested nil Popos become null; a nil root is ErrNilPopo.
func Encode(p Popo, kc KeyCase) (Map, error) {
	if IsNil(p) {
		return nil, ErrNilPopo
	}

	return encodePopo(p, kc, "")
}

// IsNil - p is nil or a typed nil pointer.
func IsNil(p Popo) bool {
	return lo.IsNil(p)
}

func encodePopo(p Popo, kc KeyCase, path string) (Map, error) {
	fields := p.Fields().Public()
	m := make(Map, 0, len(fields))

	for _, f := range fields {
		fieldPath := join(path, f.Name)

		if f.Read == nil {
			return nil, &FieldError{Path: fieldPath}
		}

		raw, err := f.Read()
		if err != nil {
			return nil, &FieldError{Path: fieldPath, Err: err}
		}

		v, err := encodeValue(raw, kc, fieldPath)
		if err != nil {
			return nil, err
		}

		m = append(m, Pair{Key: key(f.Name, kc), Value: v})
	}

	return m, nil
}

func encodeValue(v any, kc KeyCase, path string) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case Map:
		if val == nil {
			return nil, nil
		}

		return val, nil
	case Popo:
		if IsNil(val) {
			return nil, nil
		}

		return encodePopo(val, kc, path)
	case Collection:
		return encodeSeq(val.Len(), val.At, kc, path)
	case []any:
		return encodeSeq(len(val), func(i int) any { return val[i] }, kc, path)
	default:
		return v, nil
	}
}

func encodeSeq(n int, at func(int) any, kc KeyCase, path string) ([]any, error) {
	out := make([]any, n)
	for i := range out {
		v, err := encodeValue(at(i), kc, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func key(name string, kc KeyCase) string {
	if kc == SnakeCase {
		return lo.SnakeCase(name)
	}

	return name
}

func join(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}
