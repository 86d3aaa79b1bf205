// Package scaffold - generates source files of new Popo types.
package scaffold

import (
	"bytes"
	"go/format"
	"go/token"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// DefaultPackage - used when Options.Package is empty and Dir has no usable base name.
const DefaultPackage = "popo"

var (
	// ErrInvalidName - name can't become an exported Go identifier.
	ErrInvalidName = errors.New("invalid popo name")
	// ErrFileExists - target exists and Force is off.
	ErrFileExists = errors.New("popo file already exists")
)

// Options _ .
type Options struct {
	Name        string // type name, normalized to PascalCase
	Dir         string // target directory, created if missing
	Package     string // package clause; base of Dir by default
	WithFactory bool   // add PopoFactory association and a factory stub
	Force       bool   // overwrite existing file
}

type data struct {
	Name        string
	Receiver    string
	Schema      string
	Package     string
	WithFactory bool
	FactoryName string
	FactoryVar  string
}

var popoTemplate = template.Must(template.New("popo").Funcs(sprig.TxtFuncMap()).Parse(popoSource))

// Generate - render a new Popo source file into fs, return its path.
func Generate(fs afero.Fs, opts Options) (string, error) {
	d, err := prepare(opts)
	if err != nil {
		return "", err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	path := filepath.Join(dir, FileName(d.Name))

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return "", errors.Wrap(err, "afero.Exists")
	}

	if exists && !opts.Force {
		return "", errors.Wrap(ErrFileExists, path)
	}

	src, err := render(d)
	if err != nil {
		return "", err
	}

	if err = fs.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "fs.MkdirAll")
	}

	if err = afero.WriteFile(fs, path, src, 0o644); err != nil {
		return "", errors.Wrap(err, "afero.WriteFile")
	}

	return path, nil
}

// render - gofmt-ed source of the Popo described by d.
func render(d data) ([]byte, error) {
	var buf bytes.Buffer
	if err := popoTemplate.Execute(&buf, d); err != nil {
		return nil, errors.Wrap(err, "popoTemplate.Execute")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "format.Source")
	}

	return src, nil
}

// TypeName - name normalized to an exported Go identifier ("user profile" -> "UserProfile").
func TypeName(name string) (string, error) {
	typ := lo.PascalCase(strings.TrimSpace(name))
	if !token.IsIdentifier(typ) || !token.IsExported(typ) {
		return "", errors.Wrapf(ErrInvalidName, "%q", name)
	}

	return typ, nil
}

// FileName - snake_case file name of the type.
func FileName(typ string) string {
	return lo.SnakeCase(typ) + ".go"
}

// PackageName - explicit pkg if set, otherwise derived from dir.
func PackageName(pkg, dir string) (string, error) {
	if pkg != "" {
		if !token.IsIdentifier(pkg) {
			return "", errors.Wrapf(ErrInvalidName, "package %q", pkg)
		}

		return pkg, nil
	}

	abs, err := filepath.Abs(lo.Ternary(dir == "", ".", dir))
	if err != nil {
		return "", errors.Wrap(err, "filepath.Abs")
	}

	base := strings.ToLower(strings.ReplaceAll(lo.SnakeCase(filepath.Base(abs)), "_", ""))
	if !token.IsIdentifier(base) {
		return DefaultPackage, nil
	}

	return base, nil
}

func prepare(opts Options) (data, error) {
	typ, err := TypeName(opts.Name)
	if err != nil {
		return data{}, err
	}

	pkg, err := PackageName(opts.Package, opts.Dir)
	if err != nil {
		return data{}, err
	}

	lower := lo.CamelCase(typ)

	return data{
		Name:        typ,
		Receiver:    strings.ToLower(typ[:1]),
		Schema:      lower + "Schema",
		Package:     pkg,
		WithFactory: opts.WithFactory,
		FactoryName: typ + "Factory",
		FactoryVar:  lower + "Factory",
	}, nil
}

const popoSource = `package {{ .Package }}

import (
{{- if .WithFactory }}
	"github.com/imperiuse/popo/factory"
{{- end }}
	"github.com/imperiuse/popo/serializable"
)

// {{ .Name }} _ .
type {{ .Name }} struct {
}

var {{ .Schema }} = serializable.NewSchema[*{{ .Name }}]()
{{- if .WithFactory }}

// {{ .FactoryVar }} - fixtures of {{ .Name }}, registered as {{ .FactoryName | quote }}.
var {{ .FactoryVar }} = factory.New({{ .FactoryName | quote }}, func(seq int) *{{ .Name }} {
	return &{{ .Name }}{}
})

func init() {
	factory.MustRegister({{ .FactoryVar }})
}
{{- end }}

// Fields _ .
func ({{ .Receiver }} *{{ .Name }}) Fields() serializable.Fields {
	return {{ .Schema }}.Bind({{ .Receiver }})
}
{{- if .WithFactory }}

// PopoFactory _ .
func (*{{ .Name }}) PopoFactory() string {
	return {{ .FactoryName | quote }}
}
{{- end }}
`
