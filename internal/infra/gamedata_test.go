package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialTarget(t *testing.T) {
	type testCase struct {
		endpoint string
		expect   string
	}

	testCases := []testCase{
		{"http://game-data-server:80", "game-data-server:80"},
		{"https://game-data-server:443", "game-data-server:443"},
		{"game-data-server:80", "game-data-server:80"},
		{"127.0.0.1:50051", "127.0.0.1:50051"},
		{"dns:///game-data-server:80", "dns:///game-data-server:80"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expect, dialTarget(tc.endpoint), "endpoint %q", tc.endpoint)
	}
}
