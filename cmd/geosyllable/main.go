// Package main implements the geosyllable command-line tool: generating
// configurations and base-cell permutations, and encoding/decoding/
// estimating addresses from them. See spec.md §6's "CLI surface" note.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/maloquacious/semver"
)

var version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

func main() {
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", version.Short())
			return
		} else if arg == "-build-info" || arg == "--build-info" {
			fmt.Printf("%s\n", version.String())
			return
		}
	}
	log.SetFlags(log.Lshortfile | log.Ltime)

	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}
