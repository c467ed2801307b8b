package model

// Schema keeps the slice of the OpenAPI schema object the inspector prints.
// YAML tags drive the structured dump for --schema and request bodies.
type Schema struct {
	Name        string     `yaml:"-"`
	Ref         string     `yaml:"$ref,omitempty"`
	Type        SchemaType `yaml:"type,omitempty"`
	Format      string     `yaml:"format,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Default     any        `yaml:"default,omitempty"`
	Example     any        `yaml:"example,omitempty"`

	Properties []Property `yaml:"properties,omitempty"`
	Required   []string   `yaml:"required,omitempty"`

	Items *Schema `yaml:"items,omitempty"`

	Enum []any `yaml:"enum,omitempty"`

	AllOf []*Schema `yaml:"allOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty"`

	AdditionalProperties *Schema `yaml:"additionalProperties,omitempty"`

	Nullable   bool `yaml:"nullable,omitempty"`
	Deprecated bool `yaml:"deprecated,omitempty"`
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeNull    SchemaType = "null"
)

type Property struct {
	Name   string  `yaml:"name"`
	Schema *Schema `yaml:"schema,omitempty"`
}

type SecurityScheme struct {
	Name         string
	Type         SecuritySchemeType
	Description  string
	In           string
	Scheme       string
	BearerFormat string
	Flows        *OAuthFlows
}

type SecuritySchemeType string

const (
	SecurityTypeAPIKey        SecuritySchemeType = "apiKey"
	SecurityTypeHTTP          SecuritySchemeType = "http"
	SecurityTypeOAuth2        SecuritySchemeType = "oauth2"
	SecurityTypeOpenIDConnect SecuritySchemeType = "openIdConnect"
)

type OAuthFlows struct {
	Implicit          *OAuthFlow
	Password          *OAuthFlow
	ClientCredentials *OAuthFlow
	AuthorizationCode *OAuthFlow
}

type OAuthFlow struct {
	AuthorizationURL string
	TokenURL         string
	RefreshURL       string
	Scopes           map[string]string
}
