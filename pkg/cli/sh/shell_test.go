package sh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/tmc.go/pkg/l1"
	"github.com/robotalks/tmc.go/pkg/l1/msgs"
)

func TestParseUint32(t *testing.T) {
	tests := []struct {
		in  string
		val uint32
		ok  bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"0x1f", 0x1f, true},
		{"0b101", 5, true},
		{"0xffffffff", 0xffffffff, true},
		{"0x100000000", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			val, err := ParseUint32(tc.in)
			if !tc.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.val, val)
		})
	}
}

func TestExecRequiresSession(t *testing.T) {
	s := &Shell{}
	_, err := s.Exec(&msgs.NodesQuery{})
	require.EqualError(t, err, "not connected")
}

func TestFormatInfo(t *testing.T) {
	info := l1.ControllerInfo{Ref: l1.ControllerRef{Type: "tmc", ID: "a1"}}
	require.Equal(t, "tmc/a1", FormatInfo(info))
	info.Meta.Description = "bench"
	require.Equal(t, "tmc/a1: bench", FormatInfo(info))
}
