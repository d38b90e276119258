// Command ammpoolctl is a thin CLI wrapper around the pool engine,
// enough to initialize a pool and drive deposit/withdraw/swap/claim
// against it from a terminal. It deliberately stays thin: the
// interesting logic lives in internal/pool and internal/pooltx, not
// here, the same way the teacher's own cmd entrypoint defers to
// internal/cli.
package main

import (
	"github.com/LeJamon/ammpool/internal/cli"
)

func main() {
	cli.Execute()
}
