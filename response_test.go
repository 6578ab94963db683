package heuristmesh

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskResult_SuccessCoercion(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "json bool true", body: `{"response": "ok", "success": true}`, want: true},
		{name: "json bool false", body: `{"response": "ok", "success": false}`, want: false},
		{name: "lowercase string", body: `{"response": "ok", "success": "true"}`, want: true},
		{name: "capitalized string", body: `{"response": "ok", "success": "True"}`, want: true},
		{name: "string false", body: `{"response": "ok", "success": "false"}`, want: false},
		{name: "missing", body: `{"response": "ok"}`, want: false},
		{name: "null", body: `{"response": "ok", "success": null}`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result TaskResult
			require.NoError(t, json.Unmarshal([]byte(tt.body), &result))
			assert.Equal(t, tt.want, result.Success)
			assert.Equal(t, "ok", result.Response)
		})
	}
}

func TestTaskResult_SuccessWrongType(t *testing.T) {
	var result TaskResult
	err := json.Unmarshal([]byte(`{"response": "ok", "success": 7}`), &result)
	assert.Error(t, err)
}

func TestTaskStatus_Done(t *testing.T) {
	assert.False(t, (&TaskStatus{Status: TaskInProgress}).Done())
	assert.True(t, (&TaskStatus{Status: TaskFinished}).Done())
	assert.True(t, (&TaskStatus{Status: TaskError}).Done())
}

func TestSyncResponse_Decode(t *testing.T) {
	body := `{"result": {"data": {"price": 97000}}, "status": "success", "message": "done"}`

	var resp SyncResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Equal(t, "done", resp.Message)
	assert.Contains(t, resp.Result, "data")
}
