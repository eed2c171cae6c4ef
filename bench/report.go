// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Report summarizes one run.
type Report struct {
	RunID     uuid.UUID
	Algorithm string
	Dimension int
	BlockSize int
	Workers   int
	Seed      int64
	// Prepare covers untimed operand conversion (densifying, blocking).
	Prepare time.Duration
	// Elapsed covers the multiplication only.
	Elapsed time.Duration
	// Verified is true when verification ran and passed.
	Verified bool
	// Skipped is true when verification was disabled.
	Skipped bool
	// OutputPath and OutputBytes describe the persisted product, if any.
	OutputPath  string
	OutputBytes int64
}

// GFLOPS is the dense-equivalent rate 2n³ / Elapsed, in 10⁹ flop/s.
// Zero for a zero duration.
func (r *Report) GFLOPS() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	n := float64(r.Dimension)

	return 2 * n * n * n / r.Elapsed.Seconds() / 1e9
}

// WriteTimings prints the elapsed-time line in the classic
// "Code time X in seconds" form.
func (r *Report) WriteTimings(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Code time %.3f in seconds\n", r.Elapsed.Seconds())

	return err
}
