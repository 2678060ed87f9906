// Package mcpserver exposes the use-ai operations as MCP tools using the
// official MCP Go SDK.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nailen1/use-ai/pkg/useai"
)

// Operations is the surface served as tools. *useai.Service implements it.
type Operations interface {
	ListModels(ctx context.Context) ([]string, error)
	TestConnectivity(ctx context.Context, model string) useai.ConnectivityResult
	SendPrompt(ctx context.Context, prompt string, opts useai.PromptOptions) (string, error)
}

var _ Operations = (*useai.Service)(nil)

// handler runs a tool with its raw JSON arguments and returns a text result.
type handler func(ctx context.Context, args json.RawMessage) (string, error)

type tool struct {
	name        string
	description string
	schema      json.RawMessage
	run         handler
}

// MCPServer serves the use-ai tools over the MCP protocol.
type MCPServer struct {
	server *mcp.Server
}

// New creates an MCPServer with the given name and version and registers the
// list_models, test_connectivity and send_prompt tools bound to ops.
func New(name, version string, ops Operations) *MCPServer {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version,
	}, nil)

	for _, t := range tools(ops) {
		server.AddTool(&mcp.Tool{
			Name:        t.name,
			Description: t.description,
			InputSchema: t.schema,
		}, toSDKHandler(t.run))
	}

	return &MCPServer{server: server}
}

// Serve reads requests from in and writes responses to out. It blocks until
// ctx is cancelled or the transport closes.
func (s *MCPServer) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	transport := &mcp.IOTransport{
		Reader: io.NopCloser(in),
		Writer: nopWriteCloser{out},
	}

	return s.run(ctx, transport)
}

func (s *MCPServer) run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

func tools(ops Operations) []tool {
	return []tool{
		{
			name:        "list_models",
			description: "List the model ids available to the configured API key, sorted alphabetically.",
			schema:      json.RawMessage(`{"type":"object"}`),
			run: func(ctx context.Context, _ json.RawMessage) (string, error) {
				ids, err := ops.ListModels(ctx)
				if err != nil {
					return "", err
				}
				return marshalText(ids)
			},
		},
		{
			name:        "test_connectivity",
			description: "Send a one-word prompt to a model and report whether it answered.",
			schema:      json.RawMessage(`{"type":"object","properties":{"model":{"type":"string","description":"Model id; the server default when omitted."}}}`),
			run: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Model string `json:"model"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", fmt.Errorf("invalid arguments: %w", err)
				}
				return marshalText(ops.TestConnectivity(ctx, in.Model))
			},
		},
		{
			name:        "send_prompt",
			description: "Send a prompt to a model and return the reply text.",
			schema: json.RawMessage(`{"type":"object","required":["prompt"],"properties":{` +
				`"prompt":{"type":"string"},` +
				`"model":{"type":"string"},` +
				`"system_message":{"type":"string"},` +
				`"max_tokens":{"type":"integer","minimum":1},` +
				`"temperature":{"type":"number","minimum":0,"maximum":2}}}`),
			run: func(ctx context.Context, args json.RawMessage) (string, error) {
				var in struct {
					Prompt        string   `json:"prompt"`
					Model         string   `json:"model"`
					SystemMessage string   `json:"system_message"`
					MaxTokens     int      `json:"max_tokens"`
					Temperature   *float64 `json:"temperature"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", fmt.Errorf("invalid arguments: %w", err)
				}
				if in.Prompt == "" {
					return "", fmt.Errorf("prompt is required")
				}

				return ops.SendPrompt(ctx, in.Prompt, useai.PromptOptions{
					Model:         in.Model,
					SystemMessage: in.SystemMessage,
					MaxTokens:     in.MaxTokens,
					Temperature:   in.Temperature,
				})
			},
		},
	}
}

func marshalText(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// toSDKHandler wraps a handler as an SDK ToolHandler. Handler errors become
// IsError results rather than protocol errors.
func toSDKHandler(h handler) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments
		if args == nil {
			args = json.RawMessage("{}")
		}
		result, err := h(ctx, args)
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				IsError: true,
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result}},
		}, nil
	}
}

// nopWriteCloser wraps an io.Writer as an io.WriteCloser with a no-op Close.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
