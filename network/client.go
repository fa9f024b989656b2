package network

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vechain/thorclient-go/thor"
)

// Client is an HTTP client for a Thor node's REST API. It implements
// NodeService. Transport failures and non-2xx statuses surface as
// ErrConnectionFailed; malformed bodies as ErrInvalidResponse. The client
// never retries — retry and backoff policy belong to the caller.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates a node client from the given configuration. A zero
// Timeout defaults to 30 seconds; a nil Logger discards output.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: cfg.URL,
		logger:  logger,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

// GetBestBlock returns the current best block.
func (c *Client) GetBestBlock(ctx context.Context) (*Block, error) {
	return c.GetBlock(ctx, thor.RevisionBest)
}

// GetBlock returns the block at the given revision.
func (c *Client) GetBlock(ctx context.Context, revision thor.Revision) (*Block, error) {
	var block *Block
	if err := c.get(ctx, "/blocks/"+url.PathEscape(revision.String()), &block); err != nil {
		return nil, err
	}
	if block == nil {
		return nil, fmt.Errorf("%w: revision %s", ErrBlockNotFound, revision)
	}
	return block, nil
}

// ChainTag returns the chain's identifier: the last byte of the genesis
// block id.
func (c *Client) ChainTag(ctx context.Context) (byte, error) {
	genesis, err := c.GetBlock(ctx, thor.RevisionNumber(0))
	if err != nil {
		return 0, err
	}
	id, err := thor.ParseBytes32(genesis.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: genesis block id %q: %w", ErrInvalidResponse, genesis.ID, err)
	}
	return id[31], nil
}

// SendTransaction submits signed raw transaction bytes. The node validates
// the transaction semantically; this method only transmits it.
func (c *Client) SendTransaction(ctx context.Context, raw []byte) (*TransferResult, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: raw transaction", ErrNilParam)
	}
	body := struct {
		Raw string `json:"raw"`
	}{Raw: "0x" + hex.EncodeToString(raw)}

	var result *TransferResult
	if err := c.post(ctx, "/transactions", body, &result); err != nil {
		return nil, err
	}
	if result == nil || result.ID == "" {
		return nil, fmt.Errorf("%w: submission returned no transaction id", ErrInvalidResponse)
	}
	c.logger.Debug("transaction submitted", "id", result.ID)
	return result, nil
}

// GetTransaction returns a transaction by id. With includeRaw, the node
// also returns the wire bytes.
func (c *Client) GetTransaction(ctx context.Context, id thor.Bytes32, includeRaw bool) (*Transaction, error) {
	path := "/transactions/" + id.String() + "?raw=" + strconv.FormatBool(includeRaw)
	var trx *Transaction
	if err := c.get(ctx, path, &trx); err != nil {
		return nil, err
	}
	if trx == nil {
		return nil, fmt.Errorf("%w: %s", ErrTxNotFound, id)
	}
	return trx, nil
}

// GetTransactionReceipt returns the receipt of a transaction, or (nil, nil)
// while the transaction is not yet included in a block.
func (c *Client) GetTransactionReceipt(ctx context.Context, id thor.Bytes32, revision thor.Revision) (*Receipt, error) {
	path := "/transactions/" + id.String() + "/receipt"
	if !revision.IsBest() {
		path += "?revision=" + url.QueryEscape(revision.String())
	}
	var receipt *Receipt
	if err := c.get(ctx, path, &receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// CallContract executes a read-only contract call at the given revision.
func (c *Client) CallContract(ctx context.Context, contract thor.Address, call *ContractCall, revision thor.Revision) (*ContractCallResult, error) {
	if call == nil {
		return nil, fmt.Errorf("%w: contract call", ErrNilParam)
	}
	path := "/accounts/" + contract.String()
	if !revision.IsBest() {
		path += "?revision=" + url.QueryEscape(revision.String())
	}
	var result *ContractCallResult
	if err := c.post(ctx, path, call, &result); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("%w: call returned no result", ErrInvalidResponse)
	}
	return result, nil
}

// get performs a GET request and decodes the JSON response into out. A
// JSON "null" body leaves out at its zero value.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("network: create request: %w", err)
	}
	return c.do(req, out)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("network: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("network: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "url", req.URL.String(), "err", err)
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Debug("request rejected", "url", req.URL.String(), "status", resp.StatusCode)
		return fmt.Errorf("%w: HTTP %d: %s", ErrConnectionFailed, resp.StatusCode, bytes.TrimSpace(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrInvalidResponse, err)
	}
	return nil
}
