package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x-xyz/ensmetadata/domain/namewrapper"
)

func TestParseFuses(t *testing.T) {
	tests := []struct {
		in      string
		want    namewrapper.Fuses
		wantErr bool
	}{
		{in: "0", want: 0},
		{in: "65537", want: 65537},
		{in: "0x10001", want: 65537},
		{in: "0xffffffff", want: 0xffffffff},
		{in: "0x100000000", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "fuse", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFuses(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
