package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-l", "debug", "-f", "json", "-s", "s3", "-m", "2048", "-b", "media", "-g", "eu-west-1",
				"-e", "http://minio:9000", "-u", "key", "-p", "secret", "-t", "10"},
			expected: &Config{LogLevel: "debug", LogFormat: "json", AssetStore: "s3", MaxImageBytes: 2048,
				S3Bucket: "media", S3Region: "eu-west-1", S3BaseEndpoint: "http://minio:9000",
				S3AccessKey: "key", S3SecretKey: "secret", UploadTimeout: 10 * time.Second},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "cfg.json", "-x", "1", "-l", "warn"},
			expected: &Config{LogLevel: "warn"},
		},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, expectPanic: true},
		{name: "incorrect size", args: []string{"-m", "big"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config, tt.args) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config, tt.args) })
			}
		})
	}
}
