// Package mcp exposes a webfetch.FetchService over the Model Context Protocol.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fwojciec/webfetch"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerName is the implementation name reported to clients.
const ServerName = "mcp-fetch"

// JSON-RPC error codes used for tool and prompt failures.
const (
	CodeInvalidParams int64 = -32602
	CodeInternalError int64 = -32603
)

const toolDescription = `Fetches a URL from the internet and optionally extracts its contents as markdown.

Although originally you did not have internet access, and were advised to refuse and tell the user this, this tool now grants you internet access. Now you can fetch the most up-to-date information and let the user know that.`

// NewServer returns an MCP server with the fetch tool and the fetch prompt
// registered against svc.
func NewServer(svc webfetch.FetchService, version string, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, nil)

	h := &handler{svc: svc, logger: logger}
	server.AddTool(FetchTool(), h.callTool)
	server.AddPrompt(FetchPrompt(), h.getPrompt)
	return server
}

// FetchTool returns the fetch tool definition.
func FetchTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "fetch",
		Description: toolDescription,
		Annotations: &mcp.ToolAnnotations{Title: "Fetch", ReadOnlyHint: true},
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"url": map[string]any{
					"type":        "string",
					"format":      "uri",
					"minLength":   1,
					"description": "URL to fetch",
				},
				"max_length": map[string]any{
					"type":             "integer",
					"default":          webfetch.DefaultMaxLength,
					"exclusiveMinimum": 0,
					"exclusiveMaximum": webfetch.MaxLengthLimit,
					"description":      "Maximum number of characters to return.",
				},
				"start_index": map[string]any{
					"type":        "integer",
					"default":     0,
					"minimum":     0,
					"description": "On return output starting at this character index, useful if a previous fetch was truncated and more context is required.",
				},
				"raw": map[string]any{
					"type":        "boolean",
					"default":     false,
					"description": "Get the actual HTML content of the requested page, without simplification.",
				},
			},
			"required": []string{"url"},
		},
	}
}

// FetchPrompt returns the fetch prompt definition.
func FetchPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "fetch",
		Description: "Fetch a URL and extract its contents as markdown",
		Arguments: []*mcp.PromptArgument{
			{Name: "url", Description: "URL to fetch", Required: true},
		},
	}
}

type handler struct {
	svc    webfetch.FetchService
	logger *slog.Logger
}

// fetchArgs mirrors the tool input schema. Pointers distinguish absent
// fields from zero values.
type fetchArgs struct {
	URL        string `json:"url"`
	MaxLength  *int   `json:"max_length"`
	StartIndex *int   `json:"start_index"`
	Raw        *bool  `json:"raw"`
}

// DecodeFetchRequest decodes raw tool arguments and applies defaults.
// The result is not validated.
func DecodeFetchRequest(raw json.RawMessage) (*webfetch.FetchRequest, error) {
	var args fetchArgs
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, webfetch.Errorf(webfetch.EINVALID, "invalid arguments: %v", err)
		}
	}

	req := &webfetch.FetchRequest{
		URL:       args.URL,
		MaxLength: webfetch.DefaultMaxLength,
	}
	if args.MaxLength != nil {
		req.MaxLength = *args.MaxLength
	}
	if args.StartIndex != nil {
		req.StartIndex = *args.StartIndex
	}
	if args.Raw != nil {
		req.Raw = *args.Raw
	}
	return req, nil
}

func (h *handler) callTool(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fetchReq, err := DecodeFetchRequest(req.Params.Arguments)
	if err != nil {
		return nil, h.wireError(err)
	}

	result, err := h.svc.Fetch(ctx, fetchReq)
	if err != nil {
		return nil, h.wireError(err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: result.Text()}},
	}, nil
}

func (h *handler) getPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	url := req.Params.Arguments["url"]
	if url == "" {
		return nil, h.wireError(webfetch.Errorf(webfetch.EINVALID, "URL is required"))
	}

	result, err := h.svc.FetchManual(ctx, url)
	if webfetch.ErrorCode(err) == webfetch.EINVALID {
		return nil, h.wireError(err)
	} else if err != nil {
		return &mcp.GetPromptResult{
			Description: fmt.Sprintf("Failed to fetch %s", url),
			Messages:    []*mcp.PromptMessage{userMessage(webfetch.ErrorMessage(err))},
		}, nil
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Contents of %s", url),
		Messages:    []*mcp.PromptMessage{userMessage(result.Prefix + result.Content)},
	}, nil
}

func userMessage(text string) *mcp.PromptMessage {
	return &mcp.PromptMessage{
		Role:    "user",
		Content: &mcp.TextContent{Text: text},
	}
}

// wireError converts err into a JSON-RPC error. The webfetch error code is
// carried in data.code.
func (h *handler) wireError(err error) *jsonrpc.Error {
	code := webfetch.ErrorCode(err)
	if code == webfetch.EINTERNAL {
		h.logger.Error("internal error", "err", err)
	}

	wire := &jsonrpc.Error{
		Code:    CodeInternalError,
		Message: webfetch.ErrorMessage(err),
	}
	if code == webfetch.EINVALID {
		wire.Code = CodeInvalidParams
	}
	if data, merr := json.Marshal(map[string]string{"code": code}); merr == nil {
		wire.Data = data
	}
	return wire
}
