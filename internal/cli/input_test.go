package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.Error(t, err)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("Dear guest,\r\nsee below.\n\nignored\n"), "Body", &out)
	require.NoError(t, err)
	assert.Equal(t, "Dear guest,\nsee below.", got)

	got, err = GetMultiline(rdr("no newline at end"), "Body", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline at end", got)

	_, err = GetMultiline(rdr(""), "Body", &out)
	assert.Error(t, err)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"sure\n", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.in), func(t *testing.T) {
			var out bytes.Buffer
			assert.Equal(t, tt.want, Confirm(rdr(tt.in), "Delete PT-1?", &out))
			assert.Equal(t, "Delete PT-1? [y/N] ", out.String())
		})
	}
}
