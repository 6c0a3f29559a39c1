package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want int
	}{
		{"Int", 42, 42},
		{"Int64", int64(42), 42},
		{"Float64 from JSON number", float64(47), 47},
		{"String count", "47", 47},
		{"Padded string", " 45 ", 45},
		{"Bytes", []byte("12"), 12},
		{"Unparseable string", "many", 0},
		{"Nil", nil, 0},
		{"Other integer kinds via default arm", uint64(7), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.val))
		})
	}
}
