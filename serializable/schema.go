package serializable

import (
	"fmt"

	"github.com/samber/lo"
)

// Visibility - whether a field shows up in serialized output.
type Visibility uint8

const (
	// Public fields are serialized.
	Public Visibility = iota
	// Private fields are never serialized, not even as null.
	Private
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Private:
		return "private"
	default:
		return fmt.Sprintf("visibility(%d)", uint8(v))
	}
}

type (
	// Reader - reads current value of a field from the object.
	Reader[T any] func(T) (any, error)

	// FieldSpec - one static (name, visibility, reader) entry of a Schema.
	FieldSpec[T any] struct {
		Name       string
		Visibility Visibility
		Read       Reader[T]
	}

	// Schema - ordered, statically declared list of fields of type T.
	Schema[T any] struct {
		specs []FieldSpec[T]
	}

	// Field - FieldSpec bound to a concrete object, what Popo.Fields returns.
	Field struct {
		Name       string
		Visibility Visibility
		Read       func() (any, error)
	}

	// Fields - bound fields in declaration order.
	Fields []Field
)

// PublicField - public field with infallible reader.
func PublicField[T any](name string, get func(T) any) FieldSpec[T] {
	return NewField[T](name, Public, infallible(get))
}

// PrivateField - private field with infallible reader.
func PrivateField[T any](name string, get func(T) any) FieldSpec[T] {
	return NewField[T](name, Private, infallible(get))
}

// NewField - field with explicit visibility and a reader which may fail.
func NewField[T any](name string, vis Visibility, read func(T) (any, error)) FieldSpec[T] {
	return FieldSpec[T]{Name: name, Visibility: vis, Read: read}
}

func infallible[T any](get func(T) any) Reader[T] {
	if get == nil {
		return nil
	}

	return func(v T) (any, error) { return get(v), nil }
}

// NewSchema - declare schema of T. Panics on empty or duplicate names, including names
// which collide after snake_case conversion; schemas are package level declarations.
func NewSchema[T any](specs ...FieldSpec[T]) *Schema[T] {
	seen := make(map[string]string, len(specs))
	for _, s := range specs {
		if s.Name == "" {
			panic("serializable: empty field name in schema")
		}

		if s.Visibility != Public && s.Visibility != Private {
			panic(fmt.Sprintf("serializable: field %q has unknown %s", s.Name, s.Visibility))
		}

		snake := lo.SnakeCase(s.Name)
		if prev, ok := seen[snake]; ok {
			panic(fmt.Sprintf("serializable: field %q collides with %q", s.Name, prev))
		}
		seen[snake] = s.Name
	}

	return &Schema[T]{specs: append([]FieldSpec[T](nil), specs...)}
}

// Bind - attach schema to the object v.
func (s *Schema[T]) Bind(v T) Fields {
	fields := make(Fields, len(s.specs))
	for i, spec := range s.specs {
		fields[i] = Field{Name: spec.Name, Visibility: spec.Visibility}
		if read := spec.Read; read != nil {
			fields[i].Read = func() (any, error) { return read(v) }
		}
	}

	return fields
}

// Names - declared field names with the given visibility, in order.
func (s *Schema[T]) Names(vis Visibility) []string {
	return lo.FilterMap(s.specs, func(spec FieldSpec[T], _ int) (string, bool) {
		return spec.Name, spec.Visibility == vis
	})
}

// Public - fields which will be serialized.
func (fs Fields) Public() Fields {
	return lo.Filter(fs, func(f Field, _ int) bool { return f.Visibility == Public })
}
