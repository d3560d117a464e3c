package oai

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ResponseFormatB64JSON requests inline base64 payloads from model
// families that support choosing a response format.
const ResponseFormatB64JSON = "b64_json"

// ImagesRequest is the payload for POST {base}/v1/images.
// Optional fields carry omitempty so they are left off the wire when unset.
type ImagesRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	Size           string `json:"size"`
	N              int    `json:"n"`
	Quality        string `json:"quality,omitempty"`
	Style          string `json:"style,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
}

// ImagesResponse is the decoded top-level images response.
type ImagesResponse struct {
	Data []ImageItem `json:"data"`
}

// ImageItem is one element of the response "data" array. Providers
// return either an inline base64 payload ("b64_json") or a download
// location ("url"). Key presence is tracked separately from the values
// so an explicitly empty field still counts as that variant. Keys
// records every key seen on the wire, for diagnostics.
type ImageItem struct {
	B64JSON string
	URL     string
	Keys    []string

	hasB64 bool
	hasURL bool
}

// HasB64JSON reports whether the wire item carried a "b64_json" key.
func (it ImageItem) HasB64JSON() bool { return it.hasB64 }

// HasURL reports whether the wire item carried a "url" key.
func (it ImageItem) HasURL() bool { return it.hasURL }

// UnmarshalJSON decodes a wire item, recording the sorted set of keys
// present so unrecognized shapes can be reported precisely.
func (it *ImageItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	it.Keys = make([]string, 0, len(raw))
	for k := range raw {
		it.Keys = append(it.Keys, k)
	}
	sort.Strings(it.Keys)
	if v, ok := raw["b64_json"]; ok {
		it.hasB64 = true
		if err := json.Unmarshal(v, &it.B64JSON); err != nil {
			return fmt.Errorf("b64_json: %w", err)
		}
	}
	if v, ok := raw["url"]; ok {
		it.hasURL = true
		if err := json.Unmarshal(v, &it.URL); err != nil {
			return fmt.Errorf("url: %w", err)
		}
	}
	return nil
}
