package config

import (
	"flag"
	"os"
	"time"

	"github.com/fotolab/foto/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., "localhost:3000")
//	-d string   PostgreSQL DSN
//	-t int      session validity, hours
//	-o string   local data directory
//	-i string   image-processing service address (e.g., "localhost:3001")
//	-b string   S3 bucket name (enables the S3 blob backend)
//	-g string   S3 region
//	-u string   S3 root user
//	-p string   S3 root password
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the shared -config flag.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-o", "-i", "-b", "-g", "-u", "-p", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	sessionValidity := fs.Int("t", int(config.SessionValidity.Hours()), "session validity (in hours)")

	fs.StringVar(&config.DataDir, "o", config.DataDir, "local data directory")
	fs.StringVar(&config.ImgprocAddr, "i", config.ImgprocAddr, "image-processing service address")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// write back only when -t was given, so a sub-hour JSON value survives
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.SessionValidity = time.Duration(*sessionValidity) * time.Hour
		}
	})
}
