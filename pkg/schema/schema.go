package schema

import (
	"github.com/invopop/jsonschema"

	"punchline/pkg/analysis"
)

func generateSchema[T any]() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	s := r.Reflect(v)
	s.Version = ""
	return s
}

// AnalysisSchema describes the structured payload of an analyze-joke response.
var AnalysisSchema = func() *jsonschema.Schema {
	s := generateSchema[analysis.Payload]()
	s.Title = "Joke analysis"
	s.Description = "Six critique sections parsed from a model response. Sections the response did not cover hold \"" + analysis.Unavailable + "\"."
	return s
}()
