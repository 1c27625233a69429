package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PrettyJson renders v as indented JSON for debug logging. Raw []byte
// payloads are indented as-is.
func PrettyJson(v any) string {
	raw, ok := v.([]byte)
	if !ok {
		marshaled, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%+v", v)
		}
		raw = marshaled
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		return string(raw)
	}

	return out.String()
}
