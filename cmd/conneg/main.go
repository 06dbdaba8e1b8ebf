// conneg CLI - inspect HTTP content negotiation from the command line
package main

import (
	"os"

	"github.com/getmockd/conneg/pkg/cli"
)

func main() {
	os.Exit(cli.Main())
}
