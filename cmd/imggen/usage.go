package main

import (
	"io"
	"strings"
)

// helpRequested returns true if any canonical help token is present.
func helpRequested(args []string) bool {
	for _, a := range args {
		if a == "--help" || a == "-h" || a == "help" {
			return true
		}
	}
	return false
}

// versionRequested returns true if any canonical version token is present.
func versionRequested(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-version" {
			return true
		}
	}
	return false
}

// printUsage writes the usage guide to w.
func printUsage(w io.Writer) {
	var b strings.Builder
	b.WriteString("imggen — generate images via an OpenAI-compatible Images API and save them to disk\n\n")
	b.WriteString("Usage:\n  imggen [flags]\n\n")
	b.WriteString("Flags (precedence: flag > env > default):\n")
	b.WriteString("  -prompt string\n    Text prompt describing the desired image (required)\n")
	b.WriteString("  -model string\n    Model ID (env OPENAI_IMAGE_MODEL; default gpt-image-1)\n")
	b.WriteString("  -size string\n    Image size (env OPENAI_IMAGE_SIZE; gpt-image: auto|1024x1024|1536x1024|1024x1536, dall-e-3: 1024x1024|1792x1024|1024x1792; default auto)\n")
	b.WriteString("  -n int\n    Number of images to generate (env OPENAI_IMAGE_N; default 1)\n")
	b.WriteString("  -quality string\n    Image quality (env OPENAI_IMAGE_QUALITY; gpt-image: low|medium|high, dall-e-3: standard|hd; omitted when unset)\n")
	b.WriteString("  -style string\n    Image style for dall-e-3: vivid|natural (env OPENAI_IMAGE_STYLE; omitted when unset)\n")
	b.WriteString("  -out-dir string\n    Output directory (default current directory)\n")
	b.WriteString("  -out-prefix string\n    Output filename prefix (default \"generated\")\n")
	b.WriteString("  -http-timeout duration\n    HTTP timeout for the generation request and downloads (env OPENAI_IMAGE_HTTP_TIMEOUT; default 120s)\n")
	b.WriteString("  -verbose\n    Print request/response metadata to stderr (never prints the full API key)\n")
	b.WriteString("  -print-config\n    Print resolved config and exit\n")
	b.WriteString("  --version | -version\n    Print version and exit\n")
	b.WriteString("\nEnvironment:\n")
	b.WriteString("  OPENAI_API_KEY   required; missing key exits 2 before any network call\n")
	b.WriteString("  OPENAI_BASE_URL  alternate provider base URL (default https://api.openai.com)\n")
	b.WriteString("\nExit codes:\n")
	b.WriteString("  0 success; saved file paths are printed one per line\n")
	b.WriteString("  2 missing credential or bad usage\n")
	b.WriteString("  3 generation request failed (network or non-success status)\n")
	b.WriteString("  4 empty or malformed response\n")
	b.WriteString("  5 unrecognized image item shape\n")
	b.WriteString("\nExamples:\n")
	b.WriteString("  imggen -prompt \"a red circle on white\"\n\n")
	b.WriteString("  imggen -prompt \"concept art, misty harbor\" -model dall-e-3 -size 1792x1024 -quality hd -out-dir art -out-prefix harbor\n")
	safeFprintln(w, strings.TrimRight(b.String(), "\n"))
}
