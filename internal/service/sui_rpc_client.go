package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sui-tx-explainer/internal/logic/rawtx"
)

// SuiRPCClient 是 Sui 全节点 JSON-RPC 客户端，只封装交易获取
type SuiRPCClient struct {
	endpoint   string
	httpClient *http.Client
}

const defaultRPCTimeout = 15 * time.Second

func NewSuiRPCClient(endpoint string, timeout time.Duration) *SuiRPCClient {
	if timeout <= 0 {
		timeout = defaultRPCTimeout
	}
	return &SuiRPCClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// txBlockOptions 对应 sui_getTransactionBlock 的展示选项，全部打开
var txBlockOptions = map[string]bool{
	"showInput":          true,
	"showEffects":        true,
	"showEvents":         true,
	"showObjectChanges":  true,
	"showBalanceChanges": true,
}

// GetTransactionBlock 按 digest 获取交易记录。
// digest 不存在或响应畸形都以 error 上抛，绝不返回残缺记录。
func (c *SuiRPCClient) GetTransactionBlock(ctx context.Context, digest string) (*rawtx.RawTransaction, error) {
	result, err := c.call(ctx, "sui_getTransactionBlock", []any{digest, txBlockOptions})
	if err != nil {
		return nil, err
	}

	var tx rawtx.RawTransaction
	if err := json.Unmarshal(result, &tx); err != nil {
		return nil, fmt.Errorf("decode transaction block: %w", err)
	}
	if err := rawtx.Validate(&tx); err != nil {
		return nil, fmt.Errorf("malformed transaction block for %s: %w", digest, err)
	}
	return &tx, nil
}

func (c *SuiRPCClient) call(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rpc call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rpc status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(data, &rpcResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if rpcResp.Error != nil {
		return nil, fmt.Errorf("rpc error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}
	if len(rpcResp.Result) == 0 || string(rpcResp.Result) == "null" {
		return nil, fmt.Errorf("transaction not found")
	}
	return rpcResp.Result, nil
}
