package heuristmesh

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Request describes one agent invocation, synchronous or asynchronous.
// Exactly one of Query and Tool must be set: a free-text query lets the agent
// decide how to answer, while a tool request invokes a named capability with
// structured arguments.
type Request struct {
	// AgentID identifies the remote agent, e.g. "CoinGeckoTokenInfoAgent".
	AgentID string `json:"agent_id" validate:"required"`

	// Query is a natural language instruction for the agent.
	Query string `json:"query,omitempty" validate:"required_without=Tool,excluded_with=Tool"`

	// Tool names a specific agent capability to invoke directly.
	Tool string `json:"tool,omitempty"`

	// ToolArguments carries the structured parameters for Tool.
	ToolArguments map[string]any `json:"tool_arguments,omitempty" validate:"excluded_without=Tool"`

	// RawDataOnly asks the agent to skip natural language post-processing and
	// return the underlying structured data as-is.
	RawDataOnly bool `json:"raw_data_only"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report wire field names, not Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the request eagerly, before any network call. It returns a
// *ValidationError describing the first violated constraint.
func (r Request) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{Field: fe.Field(), Reason: reasonFor(fe)}
	}
	return err
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return "is required when no tool is given (exactly one of query/tool must be set)"
	case "excluded_with":
		return "is mutually exclusive with tool (exactly one of query/tool must be set)"
	case "excluded_without":
		return "requires tool to be set"
	default:
		return "is invalid"
	}
}

// requestInput is the wire shape shared by the sync `input` and the async
// `task_details` payload fields. Empty optional fields are omitted entirely.
type requestInput struct {
	RawDataOnly   bool           `json:"raw_data_only"`
	Query         string         `json:"query,omitempty"`
	Tool          string         `json:"tool,omitempty"`
	ToolArguments map[string]any `json:"tool_arguments,omitempty"`
}

func (r Request) input() requestInput {
	return requestInput{
		RawDataOnly:   r.RawDataOnly,
		Query:         r.Query,
		Tool:          r.Tool,
		ToolArguments: r.ToolArguments,
	}
}
