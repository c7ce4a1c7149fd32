package main

import (
	"context"
	"fmt"
	"os"

	"github.com/example/keeper/internal/cli"
	"github.com/example/keeper/internal/version"
)

func main() {
	if err := cli.Execute(context.Background(), os.Args[1:], version.String()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
