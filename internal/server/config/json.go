package config

import (
	"encoding/json"
	"os"

	"github.com/fotolab/foto/internal/flagx"
	"github.com/fotolab/foto/internal/timex"
)

// JsonConfig is the JSON-file shape of Config. It uses timex.Duration for
// interval fields, which allows parsing both string values such as "720h"
// and integer nanoseconds. After unmarshalling, its fields are copied into
// the runtime Config.
type JsonConfig struct {
	EndpointAddr    string         `json:"endpoint_addr"`
	DatabaseDSN     string         `json:"database_dsn"`
	SessionValidity timex.Duration `json:"session_validity"`
	DataDir         string         `json:"data_dir"`
	ImgprocAddr     string         `json:"imgproc_addr"`
	S3Bucket        string         `json:"s3_bucket"`
	S3Region        string         `json:"s3_region"`
	S3RootUser      string         `json:"s3_root_user"`
	S3RootPassword  string         `json:"s3_root_password"`
	S3BaseEndpoint  string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; when
// neither is set, no JSON file is loaded. An unreadable or invalid file
// panics, as a misconfigured server should not start.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SessionValidity.Duration != 0 {
		config.SessionValidity = c.SessionValidity.Duration
	}
	if c.DataDir != "" {
		config.DataDir = c.DataDir
	}
	if c.ImgprocAddr != "" {
		config.ImgprocAddr = c.ImgprocAddr
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3RootUser != "" {
		config.S3RootUser = c.S3RootUser
	}
	if c.S3RootPassword != "" {
		config.S3RootPassword = c.S3RootPassword
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
}
