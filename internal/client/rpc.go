package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const (
	jsonrpcVersion = "2.0"
)

// rpcRequest represents a JSON RPC request
type rpcRequest struct {
	JsonRpc string      `json:"jsonrpc"`
	Id      int64       `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

// RPCError represents an error returned inside a JSON-RPC response object.
type RPCError struct {
	Code    int             `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Error returns a string describing the RPC error. This satisfies the
// builtin error interface.
func (e *RPCError) Error() string {
	if len(e.Data) > 0 {
		return fmt.Sprintf("%d:%s:%s", e.Code, e.Message, string(e.Data))
	}
	return fmt.Sprintf("%d:%s", e.Code, e.Message)
}

type rpcResponse struct {
	Id     int64           `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// call prepares and executes one JSON-RPC request against the node.
func (c *NearClient) call(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	rpcR := rpcRequest{jsonrpcVersion, time.Now().UnixNano(), method, params}
	payloadBuffer := &bytes.Buffer{}
	if err := json.NewEncoder(payloadBuffer).Encode(rpcR); err != nil {
		return nil, err
	}

	zap.L().With(zap.String("method", method)).Debug("NEAR: RPC request")

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.url, payloadBuffer)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rpc request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read rpc response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rpc status %d: %s", resp.StatusCode, string(body))
	}

	var rResp rpcResponse
	if err := json.Unmarshal(body, &rResp); err != nil {
		return nil, fmt.Errorf("failed to decode rpc response: %w", err)
	}
	if rResp.Error != nil {
		return nil, rResp.Error
	}

	return rResp.Result, nil
}
