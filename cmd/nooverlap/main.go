// SPDX-License-Identifier: MIT

// Command nooverlap selects the heaviest set of non-overlapping intervals,
// either once from the command line or as an HTTP service.
//
//	nooverlap solve --flat 0,2,1,1,3,10,2,4,1
//	nooverlap solve request.json
//	nooverlap serve --config nooverlap.yaml --addr :9090
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
