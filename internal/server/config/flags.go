package config

import (
	"flag"
	"os"
	"time"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   TCP bind address (e.g., ":9999")
//	-d string   PostgreSQL DSN
//	-m int      maximum simultaneous sessions
//	-i int      idle session timeout, seconds
//	-w int      shutdown grace period, seconds
//	-l int      minimum submission content length
//	-x string   export artifact directory
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integer seconds.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-m", "-i", "-w", "-l", "-x", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.MaxSessions, "m", config.MaxSessions, "maximum simultaneous sessions")

	idleTimeout := fs.Int("i", int(config.IdleTimeout.Seconds()), "idle session timeout (in seconds)")
	shutdownTimeout := fs.Int("w", int(config.ShutdownTimeout.Seconds()), "shutdown grace period (in seconds)")

	fs.IntVar(&config.MinContentLength, "l", config.MinContentLength, "minimum submission content length")
	fs.StringVar(&config.ExportDir, "x", config.ExportDir, "export artifact directory")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.IdleTimeout = time.Duration(*idleTimeout) * time.Second
	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
