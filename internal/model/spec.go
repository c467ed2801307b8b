package model

// Spec is the flattened, order-preserving view of an OpenAPI document that
// the index and renderers work from. Slices keep document order; every field
// defaults to its zero value when the source omits it.
type Spec struct {
	Info           Info
	Tags           []Tag
	Paths          []Path
	Schemas        []Schema
	Security       []SecurityScheme
	GlobalSecurity []SecurityRequirement
}

// SchemaByName returns the named component schema, or nil if absent.
func (s *Spec) SchemaByName(name string) *Schema {
	for i := range s.Schemas {
		if s.Schemas[i].Name == name {
			return &s.Schemas[i]
		}
	}
	return nil
}

// TagByName returns the declared top-level tag, or nil if absent.
func (s *Spec) TagByName(name string) *Tag {
	for i := range s.Tags {
		if s.Tags[i].Name == name {
			return &s.Tags[i]
		}
	}
	return nil
}

type Info struct {
	Title       string
	Description string
	Version     string
}

type Tag struct {
	Name        string
	Description string
}

type Path struct {
	Path       string
	Operations []Operation
}
