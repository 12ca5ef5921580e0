package quiz

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of an imported question document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported question file %q: want .json, .yaml or .yml", path)
	}
}

const questionDocSchemaURL = "schema://careerlab/questions.json"

const questionDocSchema = `{
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "additionalProperties": false,
    "required": ["category", "question", "answer", "options", "explanation"],
    "properties": {
      "category": {"type": "string", "enum": ["tense", "preposition", "phrasal_verb", "idiom"]},
      "question": {"type": "string", "minLength": 1},
      "answer": {"type": "string", "minLength": 1},
      "explanation": {"type": "string"},
      "options": {
        "type": "array",
        "minItems": 2,
        "maxItems": 4,
        "items": {"type": "string", "minLength": 1}
      }
    }
  }
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func questionSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(questionDocSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(questionDocSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(questionDocSchemaURL)
	})
	return compiledSchema, compileErr
}

// questionDoc is the on-disk shape of a custom question.
type questionDoc struct {
	Category    string   `json:"category"`
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Options     []string `json:"options"`
	Explanation string   `json:"explanation"`
}

// Import reads a document holding a list of questions and adds them all to
// the bank. The document is checked against a JSON schema and every question
// is validated before any is added, so a failed import leaves the bank
// unchanged. It returns the number of questions added.
func (b *Bank) Import(r io.Reader, format Format) (int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read questions: %w", err)
	}

	doc, err := parseDocument(raw, format)
	if err != nil {
		return 0, err
	}

	sch, err := questionSchema()
	if err != nil {
		return 0, fmt.Errorf("compile question schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return 0, fmt.Errorf("schema validation failed: %w", err)
	}

	// Round-trip through JSON to get typed records from the generic value.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("normalize questions: %w", err)
	}
	var docs []questionDoc
	if err := json.Unmarshal(normalized, &docs); err != nil {
		return 0, fmt.Errorf("decode questions: %w", err)
	}

	questions := make([]Question, len(docs))
	for i, d := range docs {
		q := Question{
			Category:    Category(d.Category),
			Prompt:      d.Question,
			Answer:      d.Answer,
			Options:     d.Options,
			Explanation: d.Explanation,
		}
		if err := q.Validate(); err != nil {
			return 0, fmt.Errorf("question %d: %w", i+1, err)
		}
		questions[i] = q
	}

	for _, q := range questions {
		if err := b.Add(q); err != nil {
			return 0, err
		}
	}
	return len(questions), nil
}

// parseDocument decodes raw into a JSON-compatible generic value.
func parseDocument(raw []byte, format Format) (any, error) {
	var doc any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return doc, nil
	case FormatYAML:
		var y any
		if err := yaml.Unmarshal(raw, &y); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		// YAML scalars decode to Go ints and bools; re-encode so the schema
		// sees the same value types as for JSON input.
		b, err := json.Marshal(y)
		if err != nil {
			return nil, fmt.Errorf("convert YAML: %w", err)
		}
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("convert YAML: %w", err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("unsupported question format %q", format)
	}
}
