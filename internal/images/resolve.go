// Package images resolves generated image items to bytes and persists
// them to disk. A batch is the ordered "data" array from one
// generation call; all files of a batch share one timestamp and are
// numbered by 1-based position. Processing is sequential and
// fail-fast: the first bad item aborts the batch, and files already
// written stay on disk.
package images

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hyperifyio/imggen/internal/oai"
)

// ErrNoImages indicates an empty or absent "data" array.
var ErrNoImages = errors.New("no images returned")

// UnrecognizedItemError reports an image item that matches neither the
// inline nor the remote variant. Keys carries the key set of the
// offending wire item for diagnostics.
type UnrecognizedItemError struct {
	Index int // 1-based position within the batch
	Keys  []string
}

func (e *UnrecognizedItemError) Error() string {
	return fmt.Sprintf("unexpected image item keys at position %d: [%s]", e.Index, strings.Join(e.Keys, " "))
}

// Fetcher retrieves raw image bytes from a URL. *oai.Client satisfies it.
type Fetcher interface {
	DownloadImage(ctx context.Context, url string) ([]byte, error)
}

// BatchStamp formats the shared per-batch timestamp used in output
// filenames: UTC, sortable, second granularity. The caller computes it
// once and passes it in so persistence stays clock-free.
func BatchStamp(now time.Time) string {
	return now.UTC().Format("20060102-150405")
}

type sourceKind int

const (
	kindInline sourceKind = iota
	kindRemote
)

// source is the decoded form of one image item: exactly one of the two
// variants, fixed at the response boundary.
type source struct {
	kind   sourceKind
	inline []byte
	remote string
}

// classify maps a wire item onto the inline or remote variant. Inline
// wins when a provider sets both keys. Base64 decoding happens here so
// a bad payload is caught before any bytes for this item are written.
func classify(index int, it oai.ImageItem) (source, error) {
	switch {
	case it.HasB64JSON():
		raw, err := base64.StdEncoding.DecodeString(it.B64JSON)
		if err != nil {
			return source{}, fmt.Errorf("decode b64 image %d: %w", index, err)
		}
		return source{kind: kindInline, inline: raw}, nil
	case it.HasURL():
		return source{kind: kindRemote, remote: it.URL}, nil
	default:
		return source{}, &UnrecognizedItemError{Index: index, Keys: it.Keys}
	}
}

// ResolveAndPersist writes one PNG per item under outDir, named
// {outPrefix}-{stamp}-{index}.png, overwriting existing files of the
// same name. Items are processed in input order; the first failure
// aborts the batch without removing files written for earlier items.
// The returned paths are complete only when err is nil.
func ResolveAndPersist(ctx context.Context, items []oai.ImageItem, fetcher Fetcher, outDir, outPrefix, stamp string) ([]string, error) {
	if len(items) == 0 {
		return nil, ErrNoImages
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", outDir, err)
	}
	saved := make([]string, 0, len(items))
	for i, it := range items {
		index := i + 1
		src, err := classify(index, it)
		if err != nil {
			return nil, err
		}
		var data []byte
		switch src.kind {
		case kindInline:
			data = src.inline
		case kindRemote:
			data, err = fetcher.DownloadImage(ctx, src.remote)
			if err != nil {
				return nil, fmt.Errorf("download image %d: %w", index, err)
			}
		}
		path := filepath.Join(outDir, fmt.Sprintf("%s-%s-%d.png", outPrefix, stamp, index))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		saved = append(saved, path)
	}
	return saved, nil
}
