package loader

import (
	"slices"
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"

	"github.com/oaspect/oaspect/internal/model"
)

// Transform flattens the libopenapi v3 model into the inspection model.
// Document order is preserved throughout; absent fields stay zero-valued.
func Transform(result *Result) *model.Spec {
	doc := result.Model.Model

	spec := &model.Spec{
		Info: transformInfo(doc.Info),
		Tags: transformTags(doc.Tags),
	}

	if doc.Paths != nil {
		for pathStr, pathItem := range doc.Paths.PathItems.FromOldest() {
			spec.Paths = append(spec.Paths, transformPath(pathStr, pathItem))
		}
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
			if schema := transformSchema(name, schemaProxy.Schema()); schema != nil {
				spec.Schemas = append(spec.Schemas, *schema)
			}
		}
	}

	if doc.Components != nil && doc.Components.SecuritySchemes != nil {
		for name, scheme := range doc.Components.SecuritySchemes.FromOldest() {
			spec.Security = append(spec.Security, transformSecurityScheme(name, scheme))
		}
	}

	for _, secReq := range doc.Security {
		if secReq == nil || secReq.Requirements == nil {
			continue
		}
		for name, scopes := range secReq.Requirements.FromOldest() {
			spec.GlobalSecurity = append(spec.GlobalSecurity, model.SecurityRequirement{
				Name:   name,
				Scopes: scopes,
			})
		}
	}

	return spec
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	return model.Info{
		Title:       info.Title,
		Description: info.Description,
		Version:     info.Version,
	}
}

func transformTags(tags []*base.Tag) []model.Tag {
	var result []model.Tag
	for _, t := range tags {
		result = append(result, model.Tag{
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return result
}

func transformPath(pathStr string, pathItem *v3.PathItem) model.Path {
	path := model.Path{Path: pathStr}

	// GetOperations keeps declaration order, which the index relies on for
	// the search early-exit. Verbs outside the supported five (head, options,
	// trace) and path-level keys like shared parameters are skipped.
	for verb, op := range pathItem.GetOperations().FromOldest() {
		method := model.Method(strings.ToUpper(verb))
		if !slices.Contains(model.Methods, method) {
			continue
		}
		path.Operations = append(path.Operations, transformOperation(method, pathStr, op))
	}

	return path
}

func transformOperation(method model.Method, path string, op *v3.Operation) model.Operation {
	operation := model.Operation{
		ID:          op.OperationId,
		Method:      method,
		Path:        path,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
		Deprecated:  boolPtr(op.Deprecated),
	}

	for _, p := range op.Parameters {
		operation.Parameters = append(operation.Parameters, transformParameter(p))
	}

	if op.RequestBody != nil {
		operation.RequestBody = transformRequestBody(op.RequestBody)
	}

	if op.Responses != nil && op.Responses.Codes != nil {
		for code, resp := range op.Responses.Codes.FromOldest() {
			operation.Responses = append(operation.Responses, transformResponse(code, resp))
		}
	}

	return operation
}

func transformParameter(p *v3.Parameter) model.Parameter {
	param := model.Parameter{
		Name:        p.Name,
		In:          model.ParameterLocation(strings.ToLower(p.In)),
		Description: p.Description,
		Required:    boolPtr(p.Required),
	}

	if p.Schema != nil {
		param.Schema = transformSchemaProxy(p.Schema)
	}

	return param
}

func transformRequestBody(rb *v3.RequestBody) *model.RequestBody {
	body := &model.RequestBody{
		Description: rb.Description,
		Required:    boolPtr(rb.Required),
	}

	if rb.Content != nil {
		for mediaType, content := range rb.Content.FromOldest() {
			mtc := model.MediaTypeContent{MediaType: mediaType}
			if content.Schema != nil {
				mtc.Schema = transformSchemaProxy(content.Schema)
			}
			body.Content = append(body.Content, mtc)
		}
	}

	return body
}

func transformResponse(code string, resp *v3.Response) model.Response {
	response := model.Response{
		StatusCode:  code,
		Description: resp.Description,
	}

	if resp.Content != nil {
		for mediaType, content := range resp.Content.FromOldest() {
			mtc := model.MediaTypeContent{MediaType: mediaType}
			if content.Schema != nil {
				mtc.Schema = transformSchemaProxy(content.Schema)
			}
			response.Content = append(response.Content, mtc)
		}
	}

	return response
}

func transformSchemaProxy(proxy *base.SchemaProxy) *model.Schema {
	if proxy == nil {
		return nil
	}

	if ref := proxy.GetReference(); ref != "" {
		return &model.Schema{Ref: ref}
	}

	return transformSchema("", proxy.Schema())
}

func transformSchema(name string, s *base.Schema) *model.Schema {
	if s == nil {
		return nil
	}

	schema := &model.Schema{
		Name:        name,
		Description: s.Description,
		Format:      s.Format,
		Nullable:    boolPtr(s.Nullable),
		Deprecated:  boolPtr(s.Deprecated),
	}

	if s.Default != nil {
		schema.Default = s.Default
	}
	if s.Example != nil {
		schema.Example = s.Example
	}

	if len(s.Type) > 0 {
		schema.Type = model.SchemaType(s.Type[0])
	}

	for _, e := range s.Enum {
		schema.Enum = append(schema.Enum, e.Value)
	}

	if s.Properties != nil {
		for propName, propProxy := range s.Properties.FromOldest() {
			propSchema := transformSchemaProxy(propProxy)
			if propSchema != nil && propSchema.Name == "" {
				propSchema.Name = propName
			}
			schema.Properties = append(schema.Properties, model.Property{
				Name:   propName,
				Schema: propSchema,
			})
		}
	}

	schema.Required = s.Required

	if s.Items != nil && s.Items.A != nil {
		schema.Items = transformSchemaProxy(s.Items.A)
	}

	if s.AdditionalProperties != nil && s.AdditionalProperties.A != nil {
		schema.AdditionalProperties = transformSchemaProxy(s.AdditionalProperties.A)
	}

	for _, proxy := range s.AllOf {
		schema.AllOf = append(schema.AllOf, transformSchemaProxy(proxy))
	}
	for _, proxy := range s.OneOf {
		schema.OneOf = append(schema.OneOf, transformSchemaProxy(proxy))
	}
	for _, proxy := range s.AnyOf {
		schema.AnyOf = append(schema.AnyOf, transformSchemaProxy(proxy))
	}

	return schema
}

func transformSecurityScheme(name string, scheme *v3.SecurityScheme) model.SecurityScheme {
	ss := model.SecurityScheme{
		Name:         name,
		Type:         model.SecuritySchemeType(scheme.Type),
		Description:  scheme.Description,
		In:           scheme.In,
		Scheme:       scheme.Scheme,
		BearerFormat: scheme.BearerFormat,
	}

	if scheme.Flows != nil {
		ss.Flows = &model.OAuthFlows{}
		if scheme.Flows.Implicit != nil {
			ss.Flows.Implicit = transformOAuthFlow(scheme.Flows.Implicit)
		}
		if scheme.Flows.Password != nil {
			ss.Flows.Password = transformOAuthFlow(scheme.Flows.Password)
		}
		if scheme.Flows.ClientCredentials != nil {
			ss.Flows.ClientCredentials = transformOAuthFlow(scheme.Flows.ClientCredentials)
		}
		if scheme.Flows.AuthorizationCode != nil {
			ss.Flows.AuthorizationCode = transformOAuthFlow(scheme.Flows.AuthorizationCode)
		}
	}

	return ss
}

func transformOAuthFlow(flow *v3.OAuthFlow) *model.OAuthFlow {
	f := &model.OAuthFlow{
		AuthorizationURL: flow.AuthorizationUrl,
		TokenURL:         flow.TokenUrl,
		RefreshURL:       flow.RefreshUrl,
		Scopes:           make(map[string]string),
	}

	if flow.Scopes != nil {
		for scope, desc := range flow.Scopes.FromOldest() {
			f.Scopes[scope] = desc
		}
	}

	return f
}

func boolPtr(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
