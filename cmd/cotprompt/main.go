// Command cotprompt renders ReAct completion prompts.
package main

import (
	"fmt"
	"os"

	"cotprompt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
