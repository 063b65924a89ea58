package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/tripdesk/internal/flagx"
)

// parseFlags overlays cfg with the flags present in args. Flags owned by
// other loaders (-c/-config) are filtered out before parsing.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json, zap, zap-console)")
	fs.StringVar(&cfg.AssetStore, "s", cfg.AssetStore, "asset store (none, inline, s3)")
	fs.Int64Var(&cfg.MaxImageBytes, "m", cfg.MaxImageBytes, "image size limit (bytes)")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.S3AccessKey, "u", cfg.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3SecretKey, "p", cfg.S3SecretKey, "S3 secret key")
	uploadTimeout := fs.Int("t", int(cfg.UploadTimeout.Seconds()), "upload timeout (in seconds)")

	if err := flagx.Parse(fs, args); err != nil {
		panic(err)
	}

	cfg.UploadTimeout = time.Duration(*uploadTimeout) * time.Second
}
