package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// parseFlags parses command-line flags and environment variables.
// Precedence for every option: flag > env > default. The second return
// value is the intended exit code; non-zero means parsing failed and
// cfg.parseError carries the diagnostic.
func parseFlags() (cliConfig, int) {
	var cfg cliConfig

	// Reset default FlagSet to allow re-entrant parsing in tests.
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// Silence automatic usage/errors; we handle messaging ourselves.
	flag.CommandLine.SetOutput(io.Discard)

	flag.StringVar(&cfg.prompt, "prompt", "", "Text prompt describing the desired image (required)")
	flag.StringVar(&cfg.model, "model", getEnv("OPENAI_IMAGE_MODEL", "gpt-image-1"), "Model ID (env OPENAI_IMAGE_MODEL; default gpt-image-1)")
	flag.StringVar(&cfg.size, "size", getEnv("OPENAI_IMAGE_SIZE", "auto"), "Image size (env OPENAI_IMAGE_SIZE; gpt-image: auto|1024x1024|1536x1024|1024x1536, dall-e-3: 1024x1024|1792x1024|1024x1792)")
	flag.IntVar(&cfg.n, "n", getEnvInt("OPENAI_IMAGE_N", 1), "Number of images to generate (env OPENAI_IMAGE_N; default 1)")
	flag.StringVar(&cfg.quality, "quality", getEnv("OPENAI_IMAGE_QUALITY", ""), "Image quality (env OPENAI_IMAGE_QUALITY; gpt-image: low|medium|high, dall-e-3: standard|hd; omitted when unset)")
	flag.StringVar(&cfg.style, "style", getEnv("OPENAI_IMAGE_STYLE", ""), "Image style for dall-e-3: vivid|natural (env OPENAI_IMAGE_STYLE; omitted when unset)")
	flag.StringVar(&cfg.outDir, "out-dir", ".", "Output directory (default current directory)")
	flag.StringVar(&cfg.outPrefix, "out-prefix", "generated", "Output filename prefix")
	cfg.httpTimeout = 0
	flag.Var(durationFlexFlag{dst: &cfg.httpTimeout}, "http-timeout", "HTTP timeout for the generation request and downloads (env OPENAI_IMAGE_HTTP_TIMEOUT; default 120s)")
	flag.BoolVar(&cfg.verbose, "verbose", false, "Print request/response metadata to stderr (never prints the full API key)")
	flag.BoolVar(&cfg.printConfig, "print-config", false, "Print resolved config and exit")

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		cfg.parseError = "error: " + err.Error()
		return cfg, 2
	}

	// Env then default for the timeout when the flag was not provided.
	if cfg.httpTimeout <= 0 {
		if v := strings.TrimSpace(os.Getenv("OPENAI_IMAGE_HTTP_TIMEOUT")); v != "" {
			if d, err := parseDurationFlexible(v); err == nil {
				cfg.httpTimeout = d
			}
		}
	}
	if cfg.httpTimeout <= 0 {
		cfg.httpTimeout = 120 * time.Second
	}

	cfg.baseURL = strings.TrimRight(getEnv("OPENAI_BASE_URL", "https://api.openai.com"), "/")
	cfg.apiKey = os.Getenv("OPENAI_API_KEY")

	// -print-config is inspectable without a prompt.
	if strings.TrimSpace(cfg.prompt) == "" && !cfg.printConfig {
		cfg.parseError = "error: -prompt is required"
		return cfg, 2
	}
	if cfg.n < 1 {
		cfg.parseError = fmt.Sprintf("error: -n must be a positive integer, got %d", cfg.n)
		return cfg, 2
	}
	return cfg, 0
}
