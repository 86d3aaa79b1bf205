// Package mock - sample Popos used across the module tests and examples.
package mock

import (
	"github.com/pkg/errors"

	s "github.com/imperiuse/popo/serializable"
)

type (
	// SamplePopo - single public field.
	SamplePopo struct{ Name string }

	// ArrayPopo - camelCase field, to check key conversion.
	ArrayPopo struct{ FirstName string }

	// CollectionPopo - private field, collection, number, nullable and empty array.
	CollectionPopo struct {
		thisIsPrivate string
		Samples       []*SamplePopo
		Number        int
		Nullable      *SamplePopo
		Array         []any
	}

	// BadPopo - has a field which can't be read.
	BadPopo struct{ Name string }
)

// ErrBadPopo - returned by BadPopo reader.
var ErrBadPopo = errors.New("err bad popo")

var (
	samplePopoSchema = s.NewSchema(
		s.PublicField("name", func(p *SamplePopo) any { return p.Name }),
	)

	arrayPopoSchema = s.NewSchema(
		s.PublicField("firstName", func(p *ArrayPopo) any { return p.FirstName }),
	)

	collectionPopoSchema = s.NewSchema(
		s.PrivateField("thisIsPrivate", func(p *CollectionPopo) any { return p.thisIsPrivate }),
		s.PublicField("samples", func(p *CollectionPopo) any { return s.List[*SamplePopo](p.Samples) }),
		s.PublicField("number", func(p *CollectionPopo) any { return p.Number }),
		s.PublicField("nullable", func(p *CollectionPopo) any { return s.Optional(p.Nullable) }),
		s.PublicField("array", func(p *CollectionPopo) any { return s.List[any](p.Array) }),
	)

	badPopoSchema = s.NewSchema(
		s.PublicField("name", func(p *BadPopo) any { return p.Name }),
		s.NewField("broken", s.Public, func(*BadPopo) (any, error) { return nil, ErrBadPopo }),
	)
)

// NewSamplePopo _ .
func NewSamplePopo(name string) *SamplePopo { return &SamplePopo{Name: name} }

// Fields _ .
func (p *SamplePopo) Fields() s.Fields { return samplePopoSchema.Bind(p) }

// NewArrayPopo _ .
func NewArrayPopo(firstName string) *ArrayPopo { return &ArrayPopo{FirstName: firstName} }

// Fields _ .
func (p *ArrayPopo) Fields() s.Fields { return arrayPopoSchema.Bind(p) }

// NewCollectionPopo - nullable stays unset, array stays empty.
func NewCollectionPopo(private string, samples []*SamplePopo, number int) *CollectionPopo {
	return &CollectionPopo{thisIsPrivate: private, Samples: samples, Number: number}
}

// Private - value of the private field, for assertions.
func (p *CollectionPopo) Private() string { return p.thisIsPrivate }

// Fields _ .
func (p *CollectionPopo) Fields() s.Fields { return collectionPopoSchema.Bind(p) }

// Fields _ .
func (p *BadPopo) Fields() s.Fields { return badPopoSchema.Bind(p) }
