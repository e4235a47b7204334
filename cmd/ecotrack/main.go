// Command ecotrack tracks health and environmental activity per user.
package main

import (
	"os"

	"github.com/ecotrack/ecotrack/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
