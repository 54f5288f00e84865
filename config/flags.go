package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/bucketwiki/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-m string   storage backend ("s3", "bolt", "postgres", "memory")
//	-s string   secret key for credential digests
//	-d string   PostgreSQL DSN
//	-f string   bolt database file path
//	-u string   S3 root user
//	-p string   S3 root password
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-b string   content bucket name
//	-w string   passwords bucket name
//	-r string   profiles bucket name
//	-i string   images bucket name
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-m", "-s", "-d", "-f", "-u", "-p", "-g", "-e", "-b", "-w", "-r", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.StorageBackend, "m", config.StorageBackend, "storage backend")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.BoltPath, "f", config.BoltPath, "bolt database file path")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.ContentBucket, "b", config.ContentBucket, "content bucket")
	fs.StringVar(&config.PasswordsBucket, "w", config.PasswordsBucket, "passwords bucket")
	fs.StringVar(&config.ProfilesBucket, "r", config.ProfilesBucket, "profiles bucket")
	fs.StringVar(&config.ImagesBucket, "i", config.ImagesBucket, "images bucket")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
