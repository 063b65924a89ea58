package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the back-office console.
//
// Fields:
//   - LogLevel / LogFormat: logger selection (see logging.New).
//   - AssetStore: image picker backend, one of none, inline, s3.
//   - MaxImageBytes: size limit of a picked image file; 0 disables it.
//   - S3*: object storage settings for the s3 backend.
//   - UploadTimeout: deadline of one s3 upload.
type Config struct {
	LogLevel       string
	LogFormat      string
	AssetStore     string
	MaxImageBytes  int64
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
	UploadTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.AssetStore = "inline"
	c.MaxImageBytes = 512 * 1024
	c.S3Bucket = "tripdesk"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
	c.UploadTimeout = 30 * time.Second
}

// Load builds a Config from defaults, then the JSON file named by -c/-config
// in args, then the flags in args.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

// LoadConfig is Load over the process arguments.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}
