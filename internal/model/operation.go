package model

type Operation struct {
	ID          string
	Method      Method
	Path        string
	Summary     string
	Description string
	Tags        []string
	Parameters  []Parameter
	RequestBody *RequestBody
	Responses   []Response
	Deprecated  bool
}

type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodPatch  Method = "PATCH"
)

// Methods lists the verbs the extractor accepts; anything else on a path
// item is ignored.
var Methods = []Method{MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch}

type ParameterLocation string

const (
	LocationPath   ParameterLocation = "path"
	LocationQuery  ParameterLocation = "query"
	LocationHeader ParameterLocation = "header"
	LocationCookie ParameterLocation = "cookie"
)

type Parameter struct {
	Name        string            `yaml:"name"`
	In          ParameterLocation `yaml:"in"`
	Description string            `yaml:"description,omitempty"`
	Required    bool              `yaml:"required"`
	Schema      *Schema           `yaml:"schema,omitempty"`
}

type RequestBody struct {
	Description string             `yaml:"description,omitempty"`
	Required    bool               `yaml:"required,omitempty"`
	Content     []MediaTypeContent `yaml:"content,omitempty"`
}

type MediaTypeContent struct {
	MediaType string  `yaml:"mediaType"`
	Schema    *Schema `yaml:"schema,omitempty"`
}

type Response struct {
	StatusCode  string             `yaml:"status"`
	Description string             `yaml:"description,omitempty"`
	Content     []MediaTypeContent `yaml:"content,omitempty"`
}

type SecurityRequirement struct {
	Name   string
	Scopes []string
}
