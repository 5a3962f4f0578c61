package config

import (
	"flag"
	"os"
	"time"

	"github.com/dpavlenko/bloglist/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3003")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      identity token validity, minutes
//
// Duration flags are accepted as integers in minutes and then converted
// to time.Duration values. os.Args is first filtered to only the flags
// handled here using flagx.FilterArgs, avoiding collisions with other
// components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidity.Minutes()), "token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidity = time.Duration(*tokenValidity) * time.Minute
}
