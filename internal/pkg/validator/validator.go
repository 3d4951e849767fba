package validator

// Validator validates annotated structs.
type Validator interface {
	// Validate returns nil when data passes every rule.
	Validate(data any) error
}
