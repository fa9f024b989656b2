package network

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds the connection parameters for a Thor node's REST API.
type Config struct {
	// URL is the node's base URL without a trailing slash.
	URL string `json:"url"`
	// Network names the chain the node serves: "solo", "testnet" or
	// "mainnet".
	Network string `json:"network"`
	// Timeout bounds each HTTP request. Zero means 30 seconds.
	Timeout time.Duration `json:"-"`
	// Logger receives debug-level transport events. Nil discards them.
	Logger *slog.Logger `json:"-"`
}

// NetworkPresets contains default node configurations for known networks.
// Mainnet is intentionally omitted to require explicit configuration.
var NetworkPresets = map[string]Config{
	"solo":    {URL: "http://localhost:8669"},
	"testnet": {URL: "https://testnet.veblocks.net"},
}

// ResolveConfig merges node configuration from three sources with
// decreasing priority:
//  1. explicit flags (highest priority)
//  2. environment variables (THOR_NODE_URL, THOR_NETWORK)
//  3. network presets (lowest priority, solo/testnet only)
//
// An empty netName falls back to THOR_NETWORK. For mainnet, an explicit
// URL is required — there is no preset.
func ResolveConfig(flags *Config, env map[string]string, netName string) (*Config, error) {
	if netName == "" && env != nil {
		netName = env["THOR_NETWORK"]
	}
	result := Config{Network: netName}

	if preset, ok := NetworkPresets[netName]; ok {
		result = preset
		result.Network = netName
	}

	if env != nil {
		if v, ok := env["THOR_NODE_URL"]; ok && v != "" {
			result.URL = v
		}
	}

	if flags != nil {
		if flags.URL != "" {
			result.URL = flags.URL
		}
		if flags.Timeout != 0 {
			result.Timeout = flags.Timeout
		}
		if flags.Logger != nil {
			result.Logger = flags.Logger
		}
	}

	if result.URL == "" {
		return nil, fmt.Errorf("network: %q requires explicit node configuration (set --node-url or THOR_NODE_URL)", netName)
	}
	return &result, nil
}
