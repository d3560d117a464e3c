package main

import (
	"encoding/json"
	"io"

	"github.com/hyperifyio/imggen/internal/oai"
)

// printResolvedConfig writes a JSON object describing resolved configuration
// (API key redacted) and returns exit code 0.
func printResolvedConfig(cfg cliConfig, stdout io.Writer) int {
	payload := map[string]any{
		"model":       cfg.model,
		"size":        cfg.size,
		"n":           cfg.n,
		"quality":     cfg.quality,
		"style":       cfg.style,
		"baseURL":     cfg.baseURL,
		"endpoint":    cfg.baseURL + "/v1/images",
		"apiKey":      oai.MaskAPIKeyLast4(cfg.apiKey),
		"httpTimeout": cfg.httpTimeout.String(),
		"outDir":      cfg.outDir,
		"outPrefix":   cfg.outPrefix,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		// Fallback to a simple line to avoid surprising exits
		safeFprintln(stdout, "{}")
		return 0
	}
	safeFprintln(stdout, string(data))
	return 0
}
