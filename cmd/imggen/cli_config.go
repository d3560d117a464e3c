package main

import "time"

// cliConfig holds user-supplied configuration resolved from flags and env.
type cliConfig struct {
	prompt    string
	model     string
	size      string
	n         int
	quality   string
	style     string
	outDir    string
	outPrefix string
	// Resolved from env only; the key never appears on the command line.
	apiKey  string
	baseURL string
	// Resolved HTTP timeout (flag > env OPENAI_IMAGE_HTTP_TIMEOUT > 120s)
	httpTimeout time.Duration
	verbose     bool
	printConfig bool
	// parseError carries a human-readable parse error for early exit situations
	parseError string
}
