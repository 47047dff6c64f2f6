package config

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// configSchema is the structural contract every config file must satisfy
// before semantic validation runs. Keeping it strict (additionalProperties
// false) turns typos into load-time errors instead of silently ignored keys.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "settings": {
      "type": "object",
      "properties": {
        "workers":     {"type": "integer", "minimum": 0},
        "minDelay":    {"type": "number", "minimum": 0},
        "maxDelay":    {"type": "number", "minimum": 0},
        "timeout":     {"type": "string"},
        "interpreter": {"type": "string"},
        "log": {
          "type": "object",
          "properties": {
            "file":       {"type": "string"},
            "level":      {"type": "string"},
            "maxSizeMB":  {"type": "integer", "minimum": 0},
            "maxBackups": {"type": "integer", "minimum": 0}
          },
          "additionalProperties": false
        }
      },
      "additionalProperties": false
    },
    "scripts": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "path":        {"type": "string"},
          "repetitions": {"type": "integer", "minimum": 0},
          "interpreter": {"type": "string"}
        },
        "required": ["path"],
        "additionalProperties": false
      }
    }
  },
  "required": ["scripts"],
  "additionalProperties": false
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.schema.json", strings.NewReader(configSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("config.schema.json")
}

// validateDocument checks a decoded config document against the schema.
func validateDocument(doc interface{}) error {
	return compiledSchema.Validate(doc)
}
