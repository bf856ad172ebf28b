// Package gemini adapts the Google Gen AI SDK to the studio's text and image
// model ports.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/kenone20/domainogen/pkg/telemetry"
	domainsvcs "github.com/kenone20/domainogen/services/studio/domain/services"
)

var errNoImage = errors.New("gemini: no image in response")

// Client serves both model ports from one genai client.
type Client struct {
	models     *genai.Models
	textModel  string
	imageModel string
}

// Config selects the credential and the model names.
type Config struct {
	APIKey     string
	TextModel  string
	ImageModel string
	Timeout    time.Duration
}

// New builds a Client. Requests go through an instrumented HTTP client so
// model calls show up in traces.
func New(ctx context.Context, cfg Config) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: telemetry.NewHTTPClient(cfg.Timeout),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return &Client{models: c.Models, textModel: cfg.TextModel, imageModel: cfg.ImageModel}, nil
}

// GenerateJSON asks the text model for a JSON reply constrained by schema.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, schema *domainsvcs.Schema) ([]byte, error) {
	resp, err := c.models.GenerateContent(ctx, c.textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(schema),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return nil, errors.New("gemini: empty text response")
	}
	return []byte(text), nil
}

// GenerateImage asks the image model for one square PNG.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := c.models.GenerateImages(ctx, c.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/png",
		AspectRatio:    "1:1",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: generate images: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, errNoImage
	}
	return resp.GeneratedImages[0].Image.ImageBytes, nil
}

var schemaTypes = map[domainsvcs.SchemaType]genai.Type{
	domainsvcs.TypeObject:  genai.TypeObject,
	domainsvcs.TypeArray:   genai.TypeArray,
	domainsvcs.TypeString:  genai.TypeString,
	domainsvcs.TypeInteger: genai.TypeInteger,
}

func toGenaiSchema(s *domainsvcs.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        schemaTypes[s.Type],
		Description: s.Description,
		Items:       toGenaiSchema(s.Items),
		Required:    s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = toGenaiSchema(p)
		}
	}
	return out
}
