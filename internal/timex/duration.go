// Package timex holds time helpers for configuration decoding.
package timex

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration is a time.Duration that decodes from JSON either as a
// time.ParseDuration string ("30s", "1m30s") or as integer nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	case nil:
		d.Duration = 0
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
