package main

import (
	"fmt"
	"os"

	"github.com/openkraft/reportkraft/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "reportkraft:", err)
		os.Exit(1)
	}
}
