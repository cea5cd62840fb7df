package main

import (
	"bytes"
	"context"
	"testing"

	"designlab/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Setenv("DEMO_OUTPUT_DIR", t.TempDir())

	tests := []struct {
		name     string
		args     []string
		wantCode int
		contains string
	}{
		{name: "no args prints usage", args: nil, wantCode: 1, contains: "Usage:"},
		{name: "list", args: []string{"list"}, wantCode: 0, contains: "observer"},
		{name: "single scenario", args: []string{"isp"}, wantCode: 0, contains: "Cube Volume: 27"},
		{name: "all scenarios", args: []string{"all"}, wantCode: 0, contains: "== vector =="},
		{name: "unknown scenario", args: []string{"decorator"}, wantCode: 1, contains: "Unknown scenario: decorator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			code := run(context.Background(), tt.args, &out, logger.Nop())
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}
