package scaffold

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/example/stubgen/internal/naming"
	"github.com/example/stubgen/internal/schema"
)

// importNames are package names visible in every generated file; setter
// parameters never shadow them.
var importNames = map[string]bool{
	"context": true,
	"rowmap":  true,
	"slices":  true,
	"time":    true,
}

// buildEntitySpec converts an entity and its rules into the template view.
func (g *Generator) buildEntitySpec(e schema.Entity, rules schema.Rules) EntitySpec {
	recv := naming.Receiver(e.Name)
	spec := EntitySpec{
		Package:       g.opts.Package,
		RuntimeImport: g.opts.RuntimeImport,
		RuntimeAlias:  path.Base(g.opts.RuntimeImport) != "rowmap",
		Name:          e.Name,
		Plural:        naming.Pluralize(e.Name),
		Table:         e.Table,
		Receiver:      recv,
	}

	idents := make(map[string]string, len(e.Fields))
	usesTime, usesSlices := false, false

	for _, f := range e.Fields {
		fs := buildFieldSpec(recv, f)
		idents[f.Property] = fs.Ident
		if f.Type == schema.TypeTimestamp {
			usesTime = true
		}
		spec.Fields = append(spec.Fields, fs)
	}

	for _, v := range rules.Validate {
		field := recv + "." + idents[v.Field]
		var cond string
		switch v.Kind {
		case schema.RuleRequired:
			cond = field + ` == ""`
		case schema.RuleEmail:
			cond = "!rowmap.ValidEmail(" + field + ")"
		case schema.RuleOneOf:
			cond = "!slices.Contains([]string{" + quoteList(v.Values) + "}, " + field + ")"
			usesSlices = true
		}
		spec.Checks = append(spec.Checks, CheckSpec{Cond: cond, Message: v.Message})
	}

	for _, h := range rules.Helpers {
		switch h.Kind {
		case schema.HelperNotNull:
			spec.Helpers = append(spec.Helpers, HelperSpec{
				Doc:       fmt.Sprintf("// %s reports whether %s is set.", h.Name, h.Fields[0]),
				Signature: h.Name + "() bool",
				Body:      "return " + recv + "." + idents[h.Fields[0]] + " != nil",
			})
		case schema.HelperFieldsEqual:
			a := recv + "." + idents[h.Fields[0]]
			b := recv + "." + idents[h.Fields[1]]
			body := "return " + a + " == " + b
			if f, _ := e.Field(h.Fields[0]); f.Type == schema.TypeTimestamp {
				body = "return " + a + ".Equal(" + b + ")"
			}
			spec.Helpers = append(spec.Helpers, HelperSpec{
				Doc:       fmt.Sprintf("// %s reports whether %s equals %s.", h.Name, h.Fields[0], h.Fields[1]),
				Signature: h.Name + "() bool",
				Body:      body,
			})
		case schema.HelperRelation:
			spec.Helpers = append(spec.Helpers, HelperSpec{
				Doc:       fmt.Sprintf("// %s returns the related IDs. It stays empty until relationship\n// loading is wired in.", h.Name),
				Signature: h.Name + "() []int64",
				Body:      "return []int64{}",
			})
			if h.Contains != "" {
				spec.Helpers = append(spec.Helpers, HelperSpec{
					Doc:       fmt.Sprintf("// %s reports whether id is one of %s.", h.Contains, h.Name),
					Signature: h.Contains + "(id int64) bool",
					Body:      "return slices.Contains(" + recv + "." + h.Name + "(), id)",
				})
				usesSlices = true
			}
		}
	}

	spec.StdImports = []string{"context"}
	if usesSlices {
		spec.StdImports = append(spec.StdImports, "slices")
	}
	if usesTime {
		spec.StdImports = append(spec.StdImports, "time")
	}

	return spec
}

func buildFieldSpec(recv string, f schema.Field) FieldSpec {
	ident := naming.GoIdent(f.Property)
	param := ident
	if param == recv || importNames[param] {
		param = "v"
		if recv == "v" {
			param = "val"
		}
	}

	col := strconv.Quote(f.Column)
	field := recv + "." + ident
	fs := FieldSpec{
		Property: f.Property,
		Column:   f.Column,
		Ident:    ident,
		Method:   naming.GoName(f.Property),
		Param:    param,
	}

	switch f.Type {
	case schema.TypeInteger:
		fs.GoType = "int64"
		fs.Read = "rowmap.Int(row, " + col + ")"
		fs.Write = field
		if f.Nullable {
			fs.Read = "rowmap.NullableInt(row, " + col + ")"
		}
	case schema.TypeText:
		fs.GoType = "string"
		fs.Read = "rowmap.Text(row, " + col + ")"
		fs.Write = field
		if f.Nullable {
			fs.Read = "rowmap.NullableText(row, " + col + ")"
		}
	case schema.TypeTimestamp:
		fs.GoType = "time.Time"
		fs.Read = "rowmap.Time(row, " + col + ", clock)"
		fs.Write = "rowmap.FormatTime(" + field + ")"
		if f.Nullable {
			fs.Read = "rowmap.NullableTime(row, " + col + ")"
			fs.Write = "rowmap.FormatNullableTime(" + field + ")"
		}
	}

	if f.Nullable {
		fs.GoType = "*" + fs.GoType
		if f.Type != schema.TypeTimestamp {
			fs.Write = "rowmap.Value(" + field + ")"
		}
	}
	return fs
}

// buildDocSpec converts a registry into the documentation view.
func (g *Generator) buildDocSpec(reg *schema.Registry) DocSpec {
	spec := DocSpec{
		Title:       "Generated " + g.opts.Package + " package",
		Package:     g.opts.Package,
		ModelsDir:   g.opts.ModelsDir,
		MappingFile: g.MappingPath(),
	}
	for _, e := range reg.Entities() {
		de := DocEntity{
			Name:  e.Name,
			Table: e.Table,
			File:  g.EntityPath(e.Name),
		}
		for _, f := range e.Fields {
			typ := f.Type.String()
			if f.Nullable {
				typ = "?" + typ
			}
			de.Fields = append(de.Fields, DocField{Property: f.Property, Column: f.Column, Type: typ})
		}
		spec.Entities = append(spec.Entities, de)
	}
	return spec
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, ", ")
}
