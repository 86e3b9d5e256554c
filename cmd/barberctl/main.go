package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/barberpro/internal/cli"
)

func main() {
	_ = godotenv.Load()

	if err := cli.NewRootCmd(cli.OpenFromEnv).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
