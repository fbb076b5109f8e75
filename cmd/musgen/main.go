package main

import (
	"encoding/json"
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
	"github.com/poiesic/prospector/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/poiesic/prospector/core"),
		genops.WithImport("encoding/json"),
	)
	if err != nil {
		panic(err)
	}

	must(g.AddDefinedType(reflect.TypeFor[core.ArtifactKind]()))
	must(g.AddDefinedType(reflect.TypeFor[core.Status]()))
	// Provider snapshots are opaque bytes.
	must(g.AddDefinedType(reflect.TypeFor[json.RawMessage]()))

	for _, t := range []reflect.Type{
		reflect.TypeFor[core.LanguageStats](),
		reflect.TypeFor[core.Organization](),
		reflect.TypeFor[core.GitHubStats](),
		reflect.TypeFor[core.TwitterStats](),
		reflect.TypeFor[core.Company](),
		reflect.TypeFor[core.VectorRecord](),
	} {
		must(g.AddStruct(t))
	}

	// Unix micro timestamps, always decoded as UTC
	person := reflect.TypeFor[core.Person]()
	must(g.AddStruct(person, fields(person, map[string][]typeops.SetOption{
		"CreatedAt": {typeops.WithTimeUnit(typeops.MicroUTC)},
	})...))

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}

// fields returns one field option per struct field. musgen requires the
// count to match, so fields without an override get an empty option.
func fields(t reflect.Type, overrides map[string][]typeops.SetOption) []structops.SetOption {
	ops := make([]structops.SetOption, t.NumField())
	for i := range ops {
		ops[i] = structops.WithField(overrides[t.Field(i).Name]...)
	}
	return ops
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
