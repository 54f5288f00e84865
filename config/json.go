package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/bucketwiki/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling. It is an intermediate
// DTO used only for reading JSON configuration files; after unmarshalling,
// its fields are copied into the runtime Config struct.
type JsonConfig struct {
	StorageBackend  string `json:"storage_backend"`
	SecretKey       string `json:"secret_key"`
	DatabaseDSN     string `json:"database_dsn"`
	BoltPath        string `json:"bolt_path"`
	S3RootUser      string `json:"s3_root_user"`
	S3RootPassword  string `json:"s3_root_password"`
	S3Region        string `json:"s3_region"`
	S3BaseEndpoint  string `json:"s3_base_endpoint"`
	ContentBucket   string `json:"content_bucket"`
	PasswordsBucket string `json:"passwords_bucket"`
	ProfilesBucket  string `json:"profiles_bucket"`
	ImagesBucket    string `json:"images_bucket"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path is taken from the -c or -config command-line flags;
// if neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and
// command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.StorageBackend = c.StorageBackend
	config.SecretKey = c.SecretKey
	config.DatabaseDSN = c.DatabaseDSN
	config.BoltPath = c.BoltPath
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.ContentBucket = c.ContentBucket
	config.PasswordsBucket = c.PasswordsBucket
	config.ProfilesBucket = c.ProfilesBucket
	config.ImagesBucket = c.ImagesBucket
}
