package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/hyperifyio/imggen/internal/images"
	"github.com/hyperifyio/imggen/internal/oai"
)

// Exit codes form the CLI contract so callers can branch on $?.
const (
	exitOK          = 0
	exitFailure     = 1 // I/O failure while persisting (decode/download/write)
	exitConfig      = 2 // missing credential or bad usage
	exitTransport   = 3 // generation request failed in transit or non-2xx
	exitBadResponse = 4 // empty or malformed top-level response
	exitBadItem     = 5 // image item matches neither known variant
)

// runGenerate performs one generation call and persists the batch.
// All failures are terminal: one stderr diagnostic, distinct exit code.
func runGenerate(cfg cliConfig, stdout io.Writer, stderr io.Writer) int {
	// Credential check precedes any network activity.
	if strings.TrimSpace(cfg.apiKey) == "" {
		safeFprintln(stderr, "error: OPENAI_API_KEY is not set")
		return exitConfig
	}

	client := oai.NewClient(cfg.baseURL, cfg.apiKey, cfg.httpTimeout)
	req := oai.ImagesRequest{
		Model:   cfg.model,
		Prompt:  cfg.prompt,
		Size:    cfg.size,
		N:       cfg.n,
		Quality: cfg.quality,
		Style:   cfg.style,
	}
	// dall-e models accept response_format; gpt-image models always
	// return inline payloads, so the field stays off the wire for them.
	if strings.HasPrefix(cfg.model, "dall-e") {
		req.ResponseFormat = oai.ResponseFormatB64JSON
	}

	if cfg.verbose {
		safeFprintf(stderr, "Using endpoint: %s\n", client.ImagesEndpoint())
		safeFprintf(stderr, "Using API key: %s\n", oai.MaskAPIKeyLast4(cfg.apiKey))
		if payload, err := json.MarshalIndent(req, "", "  "); err == nil {
			safeFprintf(stderr, "Payload:\n%s\n", payload)
		}
	}

	ctx := context.Background()
	resp, err := client.CreateImages(ctx, req)
	if err != nil {
		var shapeErr *oai.MalformedResponseError
		if errors.As(err, &shapeErr) {
			safeFprintf(stderr, "error: %v\n", err)
			return exitBadResponse
		}
		safeFprintf(stderr, "error calling images API: %v\n", err)
		return exitTransport
	}

	if cfg.verbose {
		printResponseMetadata(resp, stderr)
	}

	stamp := images.BatchStamp(time.Now())
	paths, err := images.ResolveAndPersist(ctx, resp.Data, client, cfg.outDir, cfg.outPrefix, stamp)
	if err != nil {
		var itemErr *images.UnrecognizedItemError
		switch {
		case errors.Is(err, images.ErrNoImages):
			safeFprintln(stderr, "error: no images returned")
			return exitBadResponse
		case errors.As(err, &itemErr):
			safeFprintf(stderr, "error: %v\n", err)
			return exitBadItem
		default:
			safeFprintf(stderr, "error: %v\n", err)
			return exitFailure
		}
	}

	// One saved path per line for easy scripting.
	for _, p := range paths {
		safeFprintln(stdout, p)
	}
	return exitOK
}

// printResponseMetadata reduces each item to its key set so verbose
// output never dumps base64 payloads or signed URLs.
func printResponseMetadata(resp oai.ImagesResponse, stderr io.Writer) {
	meta := make([]map[string][]string, 0, len(resp.Data))
	for _, it := range resp.Data {
		meta = append(meta, map[string][]string{"keys": it.Keys})
	}
	if b, err := json.MarshalIndent(map[string]any{"data": meta}, "", "  "); err == nil {
		safeFprintf(stderr, "Response metadata:\n%s\n", b)
	}
}
