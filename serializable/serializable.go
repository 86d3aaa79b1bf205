package serializable

type (
	// Popo - plain data object which knows its own serialization schema.
	Popo interface {
		Fields() Fields
	}

	// Marshaler - anything which can present itself as bytes (json payloads, mocks).
	Marshaler interface {
		Marshal() ([]byte, error)
	}

	// Collection - ordered sequence of values, serialized element by element.
	Collection interface {
		Len() int
		At(int) any
	}

	// List - Collection over a typed slice, e.g. List[*Sample](samples).
	List[T any] []T
)

// Len _ .
func (l List[T]) Len() int { return len(l) }

// At _ .
func (l List[T]) At(i int) any { return l[i] }

// Optional - nil pointer becomes untyped nil, so a nullable nested Popo serializes to null.
func Optional[T any](p *T) any {
	if p == nil {
		return nil
	}

	return p
}
