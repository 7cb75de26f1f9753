package entity

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		"black name": {input: "black", want: color.RGBA{A: 255}},
		"white name": {input: "white", want: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		"mixed case": {input: "Black", want: color.RGBA{A: 255}},
		"hex black":  {input: "#000000", want: color.RGBA{A: 255}},
		"hex blue":   {input: "#0d6efd", want: color.RGBA{R: 0x0d, G: 0x6e, B: 0xfd, A: 255}},
		"padded":     {input: "  #ff0000 ", want: color.RGBA{R: 255, A: 255}},
		"no hash":    {input: "0d6efd", wantErr: true},
		"too short":  {input: "#fff", wantErr: true},
		"not hex":    {input: "#zzzzzz", wantErr: true},
		"empty":      {input: "", wantErr: true},
		"other name": {input: "red", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
