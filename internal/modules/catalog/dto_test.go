package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleInt64_Unmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int64
	}{
		{"number", `{"v": 12345}`, 12345},
		{"digit string", `{"v": "6789"}`, 6789},
		{"non-digit string", `{"v": "12 MB"}`, 0},
		{"null", `{"v": null}`, 0},
		{"empty string", `{"v": ""}`, 0},
		{"float", `{"v": 42.0}`, 42},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var payload struct {
				V FlexibleInt64 `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.in), &payload))
			assert.Equal(t, tc.want, int64(payload.V))
		})
	}
}
