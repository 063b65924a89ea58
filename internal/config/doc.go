// Package config loads runtime configuration for the back-office console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text, json, zap, zap-console
//	-s string   asset store: none, inline, s3
//	-m int      image size limit in bytes
//	-b string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-u string   S3 access key
//	-p string   S3 secret key
//	-t int      upload timeout (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "30s" or integer
// nanoseconds. Absent keys keep their default:
//
//	{
//	  "log_level": "debug",
//	  "log_format": "json",
//	  "asset_store": "s3",
//	  "max_image_bytes": 524288,
//	  "s3_bucket": "tripdesk",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000",
//	  "s3_access_key": "minioadmin",
//	  "s3_secret_key": "minioadmin",
//	  "upload_timeout": "30s"
//	}
//
// Malformed flags or JSON panic; the console cannot start without a valid
// configuration.
package config
