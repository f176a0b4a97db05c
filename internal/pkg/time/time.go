// Package time holds the duration type used by the config file.
package time

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrNegativeDuration = errors.New("duration must not be negative")

// Duration decodes either a Go duration string such as "15s" or a bare
// number of seconds. Timeouts are never negative, so neither form may be.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	var parsed time.Duration
	switch val := v.(type) {
	case string:
		p, err := time.ParseDuration(val)
		if err != nil {
			return err
		}
		parsed = p
	case float64:
		parsed = time.Duration(val * float64(time.Second))
	default:
		return fmt.Errorf("invalid duration %s", b)
	}

	if parsed < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeDuration, parsed)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
