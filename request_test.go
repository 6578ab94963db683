package heuristmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		wantField string
	}{
		{
			name: "valid query request",
			req:  Request{AgentID: "X", Query: "price of bitcoin"},
		},
		{
			name: "valid tool request",
			req:  Request{AgentID: "X", Tool: "get_token_info", ToolArguments: map[string]any{"coingecko_id": "ethereum"}},
		},
		{
			name: "valid tool request without arguments",
			req:  Request{AgentID: "X", Tool: "get_trending_coins"},
		},
		{
			name:      "missing agent id",
			req:       Request{Query: "price of bitcoin"},
			wantField: "agent_id",
		},
		{
			name:      "neither query nor tool",
			req:       Request{AgentID: "X"},
			wantField: "query",
		},
		{
			name:      "both query and tool",
			req:       Request{AgentID: "X", Query: "price", Tool: "get_token_info"},
			wantField: "query",
		},
		{
			name:      "tool arguments without tool",
			req:       Request{AgentID: "X", Query: "price", ToolArguments: map[string]any{"id": "btc"}},
			wantField: "tool_arguments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.wantField, valErr.Field)
		})
	}
}

func TestRequestInput_OmitsEmptyFields(t *testing.T) {
	in := Request{AgentID: "X", Query: "price"}.input()

	assert.Equal(t, "price", in.Query)
	assert.Empty(t, in.Tool)
	assert.Nil(t, in.ToolArguments)
	assert.False(t, in.RawDataOnly)
}
