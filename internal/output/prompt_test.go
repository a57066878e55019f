package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"y accepts", "y\n", true},
		{"yes accepts", "YES\n", true},
		{"padded yes accepts", "  yes  \n", true},
		{"n declines", "n\n", false},
		{"empty line declines", "\n", false},
		{"eof declines", "", false},
		{"other word declines", "sure\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := AskYesNo(strings.NewReader(tt.input), &out, "Delete learn-output?")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Delete learn-output? [y/N]: ", out.String())
		})
	}
}
