// ABOUTME: Entry point for the ronkz storefront CLI
// ABOUTME: Command-line client for catalog, cart, custom orders, and auth

package main

import (
	"fmt"
	"os"

	"github.com/stephenolajire/Ronkz-Couture/cli/cmd"
	"github.com/stephenolajire/Ronkz-Couture/logger"
)

func main() {
	logger.Init()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
