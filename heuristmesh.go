package heuristmesh

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/heurist-network/heurist-mesh-go/logging"
)

const (
	// DefaultBaseURL is the production Heurist Mesh sequencer endpoint.
	DefaultBaseURL = "https://sequencer-v2.heurist.xyz"
	// DefaultTimeout bounds each HTTP round trip unless a custom client is supplied.
	DefaultTimeout = 30 * time.Second
	// DefaultAgentType is the agent_type sent with task creation requests.
	DefaultAgentType = "AGENT"
	// EnvAPIKey is the environment variable consulted when no API key is
	// passed explicitly.
	EnvAPIKey = "HEURIST_API_KEY"
)

// Options configures a Client. All fields are optional except that an API key
// must be resolvable from either APIKey or the HEURIST_API_KEY environment
// variable.
type Options struct {
	// APIKey authenticates every request. Falls back to EnvAPIKey when empty.
	APIKey string

	// BaseURL overrides the Mesh host, e.g. for staging or a local mock.
	// Trailing slashes are trimmed.
	BaseURL string

	// Timeout for each round trip. Ignored when HTTPClient is set.
	Timeout time.Duration

	// AgentType is attached to task creation payloads (defaults to "AGENT").
	AgentType string

	// HTTPClient replaces the default transport entirely.
	HTTPClient *http.Client

	// Logger receives per-request debug records (defaults to NoOpLogger, so
	// the library is silent unless a logger is injected).
	Logger logging.Logger
}

// Client talks to the Heurist Mesh API. It is immutable after New and safe
// for concurrent use; it holds no state between calls beyond configuration.
type Client struct {
	apiKey     string
	baseURL    string
	agentType  string
	httpClient *http.Client
	logger     logging.Logger
}

// New creates a Client with optional overrides. The API key is taken from the
// options or, failing that, from the HEURIST_API_KEY environment variable;
// ErrMissingAPIKey is returned when neither is set.
func New(optFns ...func(o *Options)) (*Client, error) {
	opts := Options{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		AgentType: DefaultAgentType,
		Logger:    logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		agentType:  opts.AgentType,
		httpClient: httpClient,
		logger:     opts.Logger,
	}, nil
}

// SyncRequest invokes an agent synchronously and blocks until the remote
// responds. The request is validated locally before any network I/O.
func (c *Client) SyncRequest(ctx context.Context, req Request) (*SyncResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload := syncPayload{
		APIKey:  c.apiKey,
		AgentID: req.AgentID,
		Input:   req.input(),
	}

	var out SyncResponse
	if err := c.post(ctx, pathSyncRequest, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTask submits an asynchronous job for an agent and returns a handle
// carrying the server-issued task id. Poll it with QueryTask or WaitForTask.
func (c *Client) CreateTask(ctx context.Context, req Request) (*Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload := taskCreatePayload{
		APIKey:      c.apiKey,
		AgentID:     req.AgentID,
		AgentType:   c.agentType,
		TaskDetails: req.input(),
	}

	var out Task
	if err := c.post(ctx, pathTaskCreate, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QueryTask fetches a status snapshot for a previously created task. Unknown
// task ids surface as ErrTaskNotFound (wrapped in the HTTPError chain). Each
// call is one round trip; the poll cadence is the caller's responsibility.
func (c *Client) QueryTask(ctx context.Context, agentID, taskID string) (*TaskStatus, error) {
	if agentID == "" {
		return nil, &ValidationError{Field: "agent_id", Reason: "is required"}
	}
	if taskID == "" {
		return nil, &ValidationError{Field: "task_id", Reason: "is required"}
	}

	payload := taskQueryPayload{
		APIKey:  c.apiKey,
		AgentID: agentID,
		TaskID:  taskID,
	}

	var out TaskStatus
	if err := c.post(ctx, pathTaskQuery, payload, &out); err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			httpErr.sentinel = ErrTaskNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Close releases idle transport connections. The client must not be used
// afterwards.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
