// ndcube - CLI for scrambling, solving, and playing the N-dimensional
// hypercube puzzle.
package main

import (
	"github.com/calder-r/ndcube/internal/cli"
)

func main() {
	cli.Execute()
}
