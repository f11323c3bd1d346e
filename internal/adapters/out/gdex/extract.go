package gdex

import (
	"bytes"
	"encoding/json"

	"logistics/internal/core/domain/model/consignment"
)

// extractStrategy looks for a tracking number in one place of a decoded
// answer.
type extractStrategy func(doc map[string]any) string

// extractStrategies run in order: the first record of "data", then the top
// level.
var extractStrategies = []extractStrategy{
	firstDataRecord,
	topLevel,
}

// ExtractTrackingNumber finds the tracking number in a raw answer. A body
// that is not JSON yields consignment.ErrMalformedResponse; a JSON body
// without a known key yields a *consignment.TrackingNumberNotFoundError.
func ExtractTrackingNumber(raw []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return "", consignment.NewMalformedResponseError(string(raw), err)
	}

	if obj, ok := doc.(map[string]any); ok {
		for _, strategy := range extractStrategies {
			if cn := strategy(obj); cn != "" {
				return cn, nil
			}
		}
	}

	return "", &consignment.TrackingNumberNotFoundError{Body: string(raw)}
}

func firstDataRecord(doc map[string]any) string {
	data, ok := doc["data"].([]any)
	if !ok || len(data) == 0 {
		return ""
	}
	first, ok := data[0].(map[string]any)
	if !ok {
		return ""
	}
	return probe(first)
}

func topLevel(doc map[string]any) string {
	return probe(doc)
}

func probe(obj map[string]any) string {
	for _, key := range trackingNumberKeys {
		switch v := obj[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}
