package loader

import (
	validator "github.com/pb33f/libopenapi-validator"
	validatorErrors "github.com/pb33f/libopenapi-validator/errors"
)

// Validate checks the loaded document against the OpenAPI schema rules.
// A nil slice means the document is valid.
func Validate(result *Result) ([]*validatorErrors.ValidationError, error) {
	v, errs := validator.NewValidator(result.Doc)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	valid, validationErrs := v.ValidateDocument()
	if valid {
		return nil, nil
	}
	return validationErrs, nil
}
