package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	perr "veritas/internal/platform/errors"
	pnet "veritas/internal/platform/net"
)

//go:embed openapi.json
var openapiDoc []byte

var docReader = func() []byte { return openapiDoc }

// SpecMutator edits the decoded document before it is served
type SpecMutator func(spec map[string]any)

// errorExamples are the envelopes every operation may answer with
var errorExamples = []error{
	perr.Validationf("text", "%s", "Please enter some news text to check."),
	perr.New(perr.ErrorCodeUnknown, "prediction failed"),
}

const exampleRequestID = "579f33bf50b1/abc-000001"

func serveDocJSON(o Options) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal(docReader(), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		ensureServers(spec, "/api/v1")
		if title, ok := obj(spec, "info")["title"].(string); ok && o.TitleSuffix != "" {
			obj(spec, "info")["title"] = title + " " + o.TitleSuffix
		}
		addErrorResponses(spec)
		for _, m := range o.Mutators {
			if m != nil {
				m(spec)
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// obj returns m[key] as an object, creating it when absent
func obj(m map[string]any, key string) map[string]any {
	if o, ok := m[key].(map[string]any); ok {
		return o
	}
	o := map[string]any{}
	m[key] = o
	return o
}

// ensureServers serves 3.0.3 since the bundled swagger ui cannot render
// 3.1, and points servers at url unless the document names its own
func ensureServers(spec map[string]any, url string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// addErrorResponses declares the error envelope schema and adds an example
// response for each errorExamples status to operations lacking one
func addErrorResponses(spec map[string]any) {
	schemas := obj(obj(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = errorSchema()
	}

	defaults := map[string]any{}
	for _, err := range errorExamples {
		status, env := pnet.Error(err, exampleRequestID)
		defaults[strconv.Itoa(status)] = map[string]any{
			"description": env.Status,
			"content": map[string]any{
				"application/json": map[string]any{
					"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
					"example": env,
				},
			},
		}
	}

	for _, item := range obj(spec, "paths") {
		ops, _ := item.(map[string]any)
		for _, op := range ops {
			op, ok := op.(map[string]any)
			if !ok {
				continue
			}
			responses := obj(op, "responses")
			for status, resp := range defaults {
				if _, ok := responses[status]; !ok {
					responses[status] = resp
				}
			}
		}
	}
}

func errorSchema() map[string]any {
	prop := func(typ string) map[string]any { return map[string]any{"type": typ} }
	return map[string]any{
		"type":        "object",
		"description": "Error envelope",
		"required":    []any{"status_code", "status"},
		"properties": map[string]any{
			"status_code": prop("integer"),
			"status":      prop("string"),
			"code":        prop("integer"),
			"error":       prop("string"),
			"field":       prop("string"),
			"request_id":  prop("string"),
		},
	}
}
