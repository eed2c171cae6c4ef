// SPDX-License-Identifier: MIT

package matmul

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/matbench/internal/workerpool"
)

// Row-parallel pools are created on first use per worker count and live for
// the rest of the process, so repeated MultiplyParallel calls reuse their
// goroutines.
var (
	poolsMu sync.Mutex
	pools   = map[int]*workerpool.Pool{}
)

// sharedPool returns the pool with the given worker count (<= 0 means
// GOMAXPROCS). ParallelFor on a shared pool is safe from concurrent callers:
// every call waits on its own barrier.
func sharedPool(workers int) *workerpool.Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	poolsMu.Lock()
	defer poolsMu.Unlock()
	p, ok := pools[workers]
	if !ok {
		p = workerpool.New(workers)
		pools[workers] = p
	}

	return p
}
