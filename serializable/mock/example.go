package mock

import (
	"strconv"

	"github.com/imperiuse/popo/factory"
	s "github.com/imperiuse/popo/serializable"
	"github.com/imperiuse/popo/uuid"
)

const (
	// ExamplePopoFactory - factory name of ExamplePopo.
	ExamplePopoFactory = "ExamplePopoFactory"
	// ExampleParentPopoFactory - factory name of ExampleParentPopo.
	ExampleParentPopoFactory = "ExampleParentPopoFactory"
)

type (
	// ExamplePopo - leaf Popo with a fixture factory.
	ExamplePopo struct {
		ID     string
		Title  string
		secret string
	}

	// ExampleParentPopo - Popo nesting another Popo.
	ExampleParentPopo struct {
		Name string
		Popo *ExamplePopo
	}
)

var (
	examplePopoSchema = s.NewSchema(
		s.PublicField("id", func(p *ExamplePopo) any { return p.ID }),
		s.PublicField("title", func(p *ExamplePopo) any { return p.Title }),
		s.PrivateField("secret", func(p *ExamplePopo) any { return p.secret }),
	)

	exampleParentPopoSchema = s.NewSchema(
		s.PublicField("name", func(p *ExampleParentPopo) any { return p.Name }),
		s.PublicField("popo", func(p *ExampleParentPopo) any { return s.Optional(p.Popo) }),
	)

	// ExamplePopos - fixtures of ExamplePopo with deterministic ids.
	ExamplePopos = factory.New(ExamplePopoFactory, func(seq int) *ExamplePopo {
		return &ExamplePopo{
			ID:     uuid.FromSeq(ExamplePopoFactory, seq),
			Title:  "example #" + strconv.Itoa(seq),
			secret: uuid.New(),
		}
	})

	// ExampleParentPopos - fixtures of ExampleParentPopo, each with a fresh child.
	ExampleParentPopos = factory.New(ExampleParentPopoFactory, func(seq int) *ExampleParentPopo {
		return NewExampleParentPopo("parent #"+strconv.Itoa(seq), ExamplePopos.Make())
	})
)

func init() {
	factory.MustRegister(ExamplePopos)
	factory.MustRegister(ExampleParentPopos)
}

// NewExamplePopo _ .
func NewExamplePopo(id, title, secret string) *ExamplePopo {
	return &ExamplePopo{ID: id, Title: title, secret: secret}
}

// Fields _ .
func (p *ExamplePopo) Fields() s.Fields { return examplePopoSchema.Bind(p) }

// PopoFactory _ .
func (*ExamplePopo) PopoFactory() string { return ExamplePopoFactory }

// NewExampleParentPopo _ .
func NewExampleParentPopo(name string, popo *ExamplePopo) *ExampleParentPopo {
	return &ExampleParentPopo{Name: name, Popo: popo}
}

// Fields _ .
func (p *ExampleParentPopo) Fields() s.Fields { return exampleParentPopoSchema.Bind(p) }

// PopoFactory _ .
func (*ExampleParentPopo) PopoFactory() string { return ExampleParentPopoFactory }
