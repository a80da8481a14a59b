// Command aether runs the orbiting-node portfolio scene in a true-colour
// terminal, and offers headless helpers to inspect and snapshot it.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
