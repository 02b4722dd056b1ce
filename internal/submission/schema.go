package submission

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// submissionSchema is the structural contract of a submission payload. Field
// ranges and cross-field rules are enforced afterwards by Validate; the schema
// only rejects payloads whose shape cannot possibly decode.
var submissionSchema = map[string]any{
	"type":     "object",
	"required": []any{"student_id", "juz_number", "examiner_name"},
	"properties": map[string]any{
		"student_id": map[string]any{
			"type":        "string",
			"description": "UUID of the student being examined",
		},
		"juz_number": map[string]any{
			"type":    "integer",
			"minimum": 1,
			"maximum": 30,
		},
		"is_hizb_scope": map[string]any{"type": "boolean"},
		"hizb_index": map[string]any{
			"type": "integer",
			"enum": []any{1, 2},
		},
		"test_mode": map[string]any{
			"type":        "string",
			"description": "pmmm or normal; unknown values normalize to pmmm",
		},
		"test_date": map[string]any{"type": "string", "format": "date-time"},
		"page_from": map[string]any{"type": "integer"},
		"page_to":   map[string]any{"type": "integer"},
		"category_scores": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"blocks": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"fluency":         map[string]any{"type": "integer"},
					"recitation":      map[string]any{"type": "integer"},
					"elapsed_seconds": map[string]any{"type": "integer"},
					"extensions":      map[string]any{"type": "integer"},
					"pauses":          map[string]any{"type": "integer"},
				},
			},
		},
		"tajweed_score":    map[string]any{"type": "integer"},
		"recitation_score": map[string]any{"type": "integer"},
		"examiner_name":    map[string]any{"type": "string"},
		"remarks":          map[string]any{"type": "string"},
		"should_repeat":    map[string]any{"type": "boolean"},
	},
	"additionalProperties": false,
}

var compileOnce = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(submissionSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://submission.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// validateShape checks raw payload bytes against the submission schema.
func validateShape(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compileOnce()
	if err != nil {
		return fmt.Errorf("compile submission schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
