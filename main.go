// runsheet reads a Sessionize conference export and produces per-room
// run sheet workbooks for the organiser and volunteer staff.
package main

import (
	"os"

	"github.com/pybay/runsheet-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
