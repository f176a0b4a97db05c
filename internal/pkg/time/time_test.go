package time_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	timex "github.com/Brownie44l1/herbal-id/internal/pkg/time"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"seconds", `"15s"`, 15 * time.Second, false},
		{"mixed", `"1m30s"`, 90 * time.Second, false},
		{"bare seconds", `15`, 15 * time.Second, false},
		{"fractional seconds", `0.5`, 500 * time.Millisecond, false},
		{"garbage", `"soon"`, 0, true},
		{"boolean", `true`, 0, true},
		{"negative string", `"-1s"`, 0, true},
		{"negative number", `-3`, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var d timex.Duration
			err := json.Unmarshal([]byte(tc.in), &d)
			if (err != nil) != tc.wantErr {
				t.Fatalf("json.Unmarshal(%s) error = %v, wantErr: %v", tc.in, err, tc.wantErr)
			}
			if d.Duration != tc.want {
				t.Errorf("d.Duration = %v, want: %v", d.Duration, tc.want)
			}
		})
	}
}

func TestDuration_Negative(t *testing.T) {
	t.Parallel()

	var d timex.Duration
	if err := json.Unmarshal([]byte(`"-2m"`), &d); !errors.Is(err, timex.ErrNegativeDuration) {
		t.Errorf("json.Unmarshal(-2m) error = %v, want: %v", err, timex.ErrNegativeDuration)
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(timex.Duration{Duration: 90 * time.Second})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `"1m30s"`; got != want {
		t.Errorf("json.Marshal() = %s, want: %s", got, want)
	}
}
