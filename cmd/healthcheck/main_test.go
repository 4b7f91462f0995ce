package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddr(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "", want: "127.0.0.1:8080"},
		{raw: "garbage", want: "127.0.0.1:8080"},
		{raw: ":9000", want: "127.0.0.1:9000"},
		{raw: "0.0.0.0:8081", want: "127.0.0.1:8081"},
		{raw: "10.0.0.5:8080", want: "10.0.0.5:8080"},
		{raw: "[::1]:8080", want: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeAddr(tt.raw))
		})
	}
}
