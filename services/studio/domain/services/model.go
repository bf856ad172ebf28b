package services

import "context"

// SchemaType names a JSON value kind in a response schema.
type SchemaType string

const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeInteger SchemaType = "integer"
)

// Schema is a minimal JSON response schema handed to the text model. It
// covers what the prompts need and nothing more.
type Schema struct {
	Type        SchemaType
	Description string
	Items       *Schema
	Properties  map[string]*Schema
	Required    []string
}

// TextModel produces a JSON document conforming to schema.
type TextModel interface {
	GenerateJSON(ctx context.Context, prompt string, schema *Schema) ([]byte, error)
}

// ImageModel produces one square PNG image for prompt.
type ImageModel interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// PlaceholderSource fetches a stand-in image keyed by seed.
type PlaceholderSource interface {
	Fetch(ctx context.Context, seed string) ([]byte, error)
}

// AgeSource estimates the registration age of a domain. It never fails.
type AgeSource interface {
	EstimateAge(ctx context.Context, name string) string
}
