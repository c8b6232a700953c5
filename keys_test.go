package junction_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/junction"
)

func TestKeyString(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    junction.Key
		expected string
	}{
		{"Zero-Value", junction.Key(""), "junction context key: "},
		{"IP", junction.IpAddrKey, "junction context key: IpAddrKey"},
		{"Request-ID", junction.RequestIDKey, "junction context key: RequestIDKey"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.input.String())
		})
	}
}
