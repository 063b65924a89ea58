package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tripdesk/internal/flagx"
	"github.com/dmitrijs2005/tripdesk/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration. Pointer fields tell
// an absent key from a zero value.
type JsonConfig struct {
	LogLevel       *string         `json:"log_level"`
	LogFormat      *string         `json:"log_format"`
	AssetStore     *string         `json:"asset_store"`
	MaxImageBytes  *int64          `json:"max_image_bytes"`
	S3Bucket       *string         `json:"s3_bucket"`
	S3Region       *string         `json:"s3_region"`
	S3BaseEndpoint *string         `json:"s3_base_endpoint"`
	S3AccessKey    *string         `json:"s3_access_key"`
	S3SecretKey    *string         `json:"s3_secret_key"`
	UploadTimeout  *timex.Duration `json:"upload_timeout"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without either flag it does nothing. Read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	setIf(&cfg.AssetStore, jc.AssetStore)
	setIf(&cfg.MaxImageBytes, jc.MaxImageBytes)
	setIf(&cfg.S3Bucket, jc.S3Bucket)
	setIf(&cfg.S3Region, jc.S3Region)
	setIf(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setIf(&cfg.S3AccessKey, jc.S3AccessKey)
	setIf(&cfg.S3SecretKey, jc.S3SecretKey)
	if jc.UploadTimeout != nil {
		cfg.UploadTimeout = jc.UploadTimeout.Duration
	}
}

func setIf[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}
