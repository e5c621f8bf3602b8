package schema

import (
	"go/token"
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/example/stubgen/internal/naming"
)

// reservedMethods are generated on every entity and cannot be reused by
// accessors or helpers.
var reservedMethods = []string{"Columns", "ToMap", "Validate", "Save", "Delete"}

// Registry is the read-only, ordered set of entity definitions and their
// rules. Iteration order is declaration order.
type Registry struct {
	entities []Entity
	index    map[string]int
	rules    map[string]Rules
}

// NewRegistry checks a declaration and builds a Registry from it. Every
// problem found is reported in a single *Error.
func NewRegistry(decl Declaration) (*Registry, error) {
	var ps problems

	r := &Registry{
		index: make(map[string]int, len(decl.Entities)),
		rules: make(map[string]Rules, len(decl.Rules)),
	}

	for _, e := range decl.Entities {
		e = e.clone()
		if e.Table == "" && e.Name != "" {
			e.Table = naming.Table(e.Name)
		}
		checkEntity(&ps, e)
		if e.Name != "" {
			if _, dup := r.index[e.Name]; dup {
				ps.add(e.Name, "", "duplicate entity name")
				continue
			}
			r.index[e.Name] = len(r.entities)
		}
		r.entities = append(r.entities, e)
	}

	checkPackageNames(&ps, r.entities)

	for _, name := range slices.Sorted(maps.Keys(decl.Rules)) {
		rules := decl.Rules[name]
		i, ok := r.index[name]
		if !ok {
			ps.add(name, "", "rules declared for unknown entity")
			continue
		}
		checkRules(&ps, r.entities[i], rules)
		r.rules[name] = rules.clone()
	}

	if err := ps.err(); err != nil {
		return nil, err
	}
	return r, nil
}

// Entities returns the entity definitions in declaration order.
func (r *Registry) Entities() []Entity {
	out := make([]Entity, len(r.entities))
	for i, e := range r.entities {
		out[i] = e.clone()
	}
	return out
}

// Entity looks up an entity by name.
func (r *Registry) Entity(name string) (Entity, bool) {
	i, ok := r.index[name]
	if !ok {
		return Entity{}, false
	}
	return r.entities[i].clone(), true
}

// Rules returns the special-case rules of an entity; the zero Rules when
// none are declared.
func (r *Registry) Rules(name string) Rules {
	return r.rules[name].clone()
}

// Names returns the entity names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entities))
	for i, e := range r.entities {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Declaration converts the registry back to its declarative form.
func (r *Registry) Declaration() Declaration {
	decl := Declaration{Entities: r.Entities()}
	if len(r.rules) > 0 {
		decl.Rules = make(map[string]Rules, len(r.rules))
		for name, rules := range r.rules {
			decl.Rules[name] = rules.clone()
		}
	}
	return decl
}

func checkEntity(ps *problems, e Entity) {
	if e.Name == "" {
		ps.add("", "", "entity name is empty")
	} else if !isASCII(e.Name) || !token.IsIdentifier(e.Name) || !token.IsExported(e.Name) {
		ps.add(e.Name, "", "entity name must be an exported Go identifier")
	}
	if len(e.Fields) == 0 {
		ps.add(e.Name, "", "entity declares no fields")
	}

	properties := make(map[string]bool, len(e.Fields))
	columns := make(map[string]bool, len(e.Fields))
	idents := make(map[string]string, len(e.Fields))
	methods := make(map[string]string, 2*len(e.Fields)+len(reservedMethods))
	for _, m := range reservedMethods {
		methods[m] = "generated method " + m
	}

	for i, f := range e.Fields {
		if f.Property == "" {
			ps.add(e.Name, "", "field %d has an empty property name", i+1)
			continue
		}
		if !validProperty(f.Property) {
			ps.add(e.Name, f.Property, "property name is not a valid identifier")
			continue
		}
		if properties[f.Property] {
			ps.add(e.Name, f.Property, "duplicate property name")
			continue
		}
		properties[f.Property] = true

		if f.Column == "" {
			ps.add(e.Name, f.Property, "column name is empty")
		} else if columns[f.Column] {
			ps.add(e.Name, f.Property, "duplicate column %q", f.Column)
		}
		columns[f.Column] = true

		if f.Type == TypeInvalid {
			ps.add(e.Name, f.Property, "field type is missing")
		}

		ident := naming.GoIdent(f.Property)
		if other, dup := idents[ident]; dup {
			ps.add(e.Name, f.Property, "struct field %s collides with property %s", ident, other)
		}
		idents[ident] = f.Property

		getter := naming.GoName(f.Property)
		for _, m := range []string{getter, "Set" + getter} {
			if other, dup := methods[m]; dup {
				ps.add(e.Name, f.Property, "accessor %s collides with %s", m, other)
				continue
			}
			methods[m] = "accessor of " + f.Property
		}
	}
}

// validProperty reports whether a property name yields usable Go names.
// Keywords are allowed: the struct field is renamed ("type" -> "typ").
// Names are ASCII only.
func validProperty(p string) bool {
	if !isASCII(p) || !(token.IsIdentifier(p) || token.IsKeyword(p)) {
		return false
	}
	name := naming.GoName(p)
	return token.IsIdentifier(naming.GoIdent(p)) && token.IsIdentifier(name) && token.IsExported(name)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// checkPackageNames rejects entities whose generated package-level
// functions would clash with each other or with another entity's type.
func checkPackageNames(ps *problems, entities []Entity) {
	seen := make(map[string]string)
	claim := func(name, owner string) {
		if other, dup := seen[name]; dup && other != owner {
			ps.add(owner, "", "generated identifier %s collides with entity %s", name, other)
			return
		}
		seen[name] = owner
	}
	for _, e := range entities {
		if e.Name == "" {
			continue
		}
		claim(e.Name, e.Name)
	}
	for _, e := range entities {
		if e.Name == "" {
			continue
		}
		claim(e.Name+"FromMap", e.Name)
		claim("Find"+e.Name+"ByID", e.Name)
		claim("Search"+naming.Pluralize(e.Name), e.Name)
	}
}

func checkRules(ps *problems, e Entity, rules Rules) {
	for _, v := range rules.Validate {
		checkValidationRule(ps, e, v)
	}

	methods := make(map[string]bool)
	for _, m := range reservedMethods {
		methods[m] = true
	}
	for _, f := range e.Fields {
		methods[naming.GoName(f.Property)] = true
		methods["Set"+naming.GoName(f.Property)] = true
	}
	claim := func(name string) {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			ps.add(e.Name, "", "helper name %q must be an exported Go identifier", name)
			return
		}
		if methods[name] {
			ps.add(e.Name, "", "helper %s collides with another generated method", name)
			return
		}
		methods[name] = true
	}

	for _, h := range rules.Helpers {
		claim(h.Name)
		checkHelper(ps, e, h)
		if h.Contains != "" {
			claim(h.Contains)
		}
	}
}

func checkValidationRule(ps *problems, e Entity, v ValidationRule) {
	if v.Message == "" {
		ps.add(e.Name, v.Field, "%s rule has an empty message", v.Kind)
	}

	switch v.Kind {
	case RuleRequired, RuleEmail, RuleOneOf:
	default:
		ps.add(e.Name, v.Field, "unknown validation rule %q", v.Kind)
		return
	}

	f, ok := e.Field(v.Field)
	if !ok {
		ps.add(e.Name, v.Field, "%s rule refers to an unknown field", v.Kind)
		return
	}
	if f.Type != TypeText || f.Nullable {
		ps.add(e.Name, v.Field, "%s rule requires a non-nullable string field", v.Kind)
	}

	if v.Kind != RuleOneOf {
		if len(v.Values) > 0 {
			ps.add(e.Name, v.Field, "%s rule does not take values", v.Kind)
		}
		return
	}

	if len(v.Values) == 0 {
		ps.add(e.Name, v.Field, "one_of rule declares no values")
	}
	seen := make(map[string]bool, len(v.Values))
	for _, val := range v.Values {
		if val == "" {
			ps.add(e.Name, v.Field, "one_of rule contains an empty value")
			continue
		}
		if seen[val] {
			ps.add(e.Name, v.Field, "one_of rule repeats value %q", val)
		}
		seen[val] = true
	}
}

func checkHelper(ps *problems, e Entity, h Helper) {
	switch h.Kind {
	case HelperNotNull:
		if len(h.Fields) != 1 {
			ps.add(e.Name, "", "helper %s needs exactly one field", h.Name)
			return
		}
		f, ok := e.Field(h.Fields[0])
		if !ok {
			ps.add(e.Name, h.Fields[0], "helper %s refers to an unknown field", h.Name)
			return
		}
		if !f.Nullable {
			ps.add(e.Name, f.Property, "helper %s needs a nullable field", h.Name)
		}
	case HelperFieldsEqual:
		if len(h.Fields) != 2 || h.Fields[0] == h.Fields[1] {
			ps.add(e.Name, "", "helper %s needs exactly two distinct fields", h.Name)
			return
		}
		a, okA := e.Field(h.Fields[0])
		b, okB := e.Field(h.Fields[1])
		if !okA || !okB {
			ps.add(e.Name, "", "helper %s refers to an unknown field", h.Name)
			return
		}
		if a.Type != b.Type || a.Nullable || b.Nullable {
			ps.add(e.Name, "", "helper %s needs two non-nullable fields of the same type", h.Name)
		}
	case HelperRelation:
		if len(h.Fields) > 0 {
			ps.add(e.Name, "", "helper %s does not take fields", h.Name)
		}
	default:
		ps.add(e.Name, "", "unknown helper kind %q", h.Kind)
	}
}
