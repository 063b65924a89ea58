package assets

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/tripdesk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestNew_SelectsBackend(t *testing.T) {
	tests := []struct {
		store string
		want  any
		err   bool
	}{
		{"none", NoopPicker{}, false},
		{"inline", &InlinePicker{}, false},
		{"", &InlinePicker{}, false},
		{"S3", &S3Picker{}, false},
		{"ftp", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.store, func(t *testing.T) {
			p, err := New(&config.Config{AssetStore: tt.store})
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, p)
		})
	}
}

func TestNoopPicker_ReturnsPath(t *testing.T) {
	h, err := NoopPicker{}.Pick(context.Background(), " /tmp/logo.png ")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/logo.png", h)
}

func TestInlinePicker_DataURI(t *testing.T) {
	p := writeTemp(t, "logo.png", pngHeader)

	h, err := (&InlinePicker{MaxBytes: 1024}).Pick(context.Background(), p)
	require.NoError(t, err)

	prefix := "data:image/png;base64,"
	require.True(t, strings.HasPrefix(h, prefix), h)
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(h, prefix))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, raw)
}

func TestInlinePicker_TextHasNoCharsetParam(t *testing.T) {
	assert.True(t, strings.HasPrefix(DataURI([]byte("hello")), "data:text/plain;base64,"))
}

func TestInlinePicker_Errors(t *testing.T) {
	big := writeTemp(t, "big.bin", make([]byte, 64))

	_, err := (&InlinePicker{MaxBytes: 10}).Pick(context.Background(), big)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooLarge))

	_, err = (&InlinePicker{}).Pick(context.Background(), big)
	require.NoError(t, err, "zero limit disables the check")

	_, err = (&InlinePicker{}).Pick(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = (&InlinePicker{}).Pick(context.Background(), t.TempDir())
	require.Error(t, err)
}
