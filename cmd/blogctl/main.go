package main

import (
	"context"
	"flag"
	"os"

	"github.com/dpavlenko/bloglist/internal/client/cli"
)

func main() {

	addr := flag.String("s", defaultServerAddr(), "server address")
	flag.Parse()

	ctx := context.Background()
	app := cli.NewApp(*addr)
	app.Run(ctx)

}

func defaultServerAddr() string {
	if v, ok := os.LookupEnv("SERVER_ADDRESS"); ok {
		return v
	}
	return "http://localhost:3003"
}
