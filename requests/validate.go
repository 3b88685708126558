package requests

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(renderSettingsStructLevel, RenderSettings{})
	return v
}

// renderSettingsStructLevel requires the padding to leave room on the canvas
func renderSettingsStructLevel(sl validator.StructLevel) {
	r := sl.Current().Interface().(RenderSettings)
	if r.Padding >= math.Min(r.Width, r.Height)/2 {
		sl.ReportError(r.Padding, "Padding", "padding", "lt_half_canvas", "")
	}
}

// ReadBaseDocument decodes and validates a make_base document
func ReadBaseDocument(r io.Reader) (*BaseDocument, error) {
	var doc BaseDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse base document: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid base document: %w", err)
	}
	return &doc, nil
}

// ReadStatDocument decodes and validates a process_requests document
func ReadStatDocument(r io.Reader) (*StatDocument, error) {
	var doc StatDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse stat document: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid stat document: %w", err)
	}
	return &doc, nil
}

// ValidateBaseRequests checks records that did not come from a document,
// such as those produced by a feed import.
func ValidateBaseRequests(reqs []BaseRequest) error {
	for i := range reqs {
		if err := validate.Struct(&reqs[i]); err != nil {
			return fmt.Errorf("invalid base request %d (%s %q): %w", i, reqs[i].Type, reqs[i].Name, err)
		}
	}
	return nil
}
