package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0B"},
		{10, "10B"},
		{1023, "1023B"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{10 * 1024, "10.0KB"},
		{1024 * 1024, "1.0MB"},
		{5*1024*1024 + 512*1024, "5.5MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanSize(tt.n), "HumanSize(%d)", tt.n)
	}
}
