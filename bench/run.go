// SPDX-License-Identifier: MIT

package bench

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/matbench/matmul"
	"github.com/katalvlaran/matbench/matrix"
)

// Run executes one benchmark.
//
// p is used as given; see DefaultParams. Kernel diagnostics emitted by
// package matmul during the run are routed to log.
//
// Phases: validate → allocate and fill A (upper packed) and B (Normal) from
// rand.NewSource(Seed) → prepare the algorithm's operands → timed multiply
// → verify against matmul.Reference (when p.Verify) → persist (when
// p.OutputPath is set). ctx is checked between phases only; a kernel, once
// started, runs to completion.
//
// Errors:
//   - ErrInvalidParam (params, wraps the field).
//   - ctx.Err() when cancelled between phases.
//   - ErrVerificationFailed wrapping *matrix.Mismatch; the Report is still
//     returned so callers can print timings.
//   - I/O errors from writing the output file.
func Run(ctx context.Context, p Params, log logrus.FieldLogger) (*Report, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	algo, _ := Lookup(p.Algorithm) // validated above

	rep := &Report{
		RunID:     uuid.New(),
		Algorithm: algo.Name,
		Dimension: p.Dimension,
		BlockSize: p.BlockSize,
		Workers:   p.Workers,
		Seed:      p.Seed,
		Skipped:   !p.Verify,
	}
	log = log.WithFields(logrus.Fields{
		"run_id":    rep.RunID.String(),
		"algorithm": algo.Name,
		"dim":       p.Dimension,
		"block":     p.BlockSize,
	})
	log.Info("bench: run started")

	// Kernel diagnostics (generic-path notices) go to this run's logger.
	defer matmul.SetLogger(matmul.SetLogger(log))

	a, b, err := operands(p)
	if err != nil {
		return nil, err
	}
	defer a.Release()
	defer b.Release()
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	prepStart := time.Now()
	run, release, err := algo.prepare(a, b, p)
	if err != nil {
		return nil, fmt.Errorf("bench: prepare %s: %w", algo.Name, err)
	}
	defer release()
	rep.Prepare = time.Since(prepStart)
	out, err := matrix.NewNormal(p.Dimension, p.Dimension)
	if err != nil {
		return nil, err
	}
	defer out.Release()
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	run(out)
	rep.Elapsed = time.Since(start)
	log.WithFields(logrus.Fields{
		"elapsed": rep.Elapsed,
		"prepare": rep.Prepare,
		"gflops":  fmt.Sprintf("%.2f", rep.GFLOPS()),
	}).Info("bench: multiply finished")

	if p.Verify {
		if err = ctx.Err(); err != nil {
			return rep, err
		}
		if err = verify(a, b, out); err != nil {
			log.WithError(err).Error("bench: verification failed")
			return rep, err
		}
		rep.Verified = true
		log.Debug("bench: verification passed")
	}

	if p.OutputPath != "" {
		if err = ctx.Err(); err != nil {
			return rep, err
		}
		rep.OutputBytes, err = writeOutput(p.OutputPath, out)
		if err != nil {
			return rep, err
		}
		rep.OutputPath = p.OutputPath
		log.WithField("path", p.OutputPath).Debug("bench: product written")
	}

	return rep, nil
}

// operands allocates and fills A and B. A's values are drawn first.
func operands(p Params) (a, b *matrix.Matrix, err error) {
	if a, err = matrix.NewUpperTriangular(p.Dimension); err != nil {
		return nil, nil, err
	}
	if b, err = matrix.NewNormal(p.Dimension, p.Dimension); err != nil {
		return nil, nil, err
	}
	rng := rand.New(rand.NewSource(p.Seed))
	matrix.FillRandom(a, rng)
	matrix.FillRandom(b, rng)

	return a, b, nil
}

func verify(a, b, out *matrix.Matrix) error {
	ref, err := matmul.Reference(a, b)
	if err != nil {
		return err
	}
	defer ref.Release()
	if ok, mm := matrix.Verify(ref, out); !ok {
		return fmt.Errorf("%w: %w", ErrVerificationFailed, mm)
	}

	return nil
}

func writeOutput(path string, out *matrix.Matrix) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("bench: output: %w", err)
	}
	w := bufio.NewWriter(f)
	n, err := out.WriteTo(w)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("bench: output %s: %w", path, err)
	}

	return n, nil
}
