// SPDX-License-Identifier: MIT

package matmul

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type loggerHolder struct{ l logrus.FieldLogger }

var pkgLogger atomic.Pointer[loggerHolder]

func init() {
	pkgLogger.Store(&loggerHolder{l: logrus.StandardLogger()})
}

// SetLogger replaces the logger used for diagnostics (generic-path notices,
// kernel selection) and returns the previous one, so a caller can scope it:
//
//	defer matmul.SetLogger(matmul.SetLogger(runLog))
//
// nil restores logrus.StandardLogger().
func SetLogger(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		l = logrus.StandardLogger()
	}

	return pkgLogger.Swap(&loggerHolder{l: l}).l
}

func logger() logrus.FieldLogger { return pkgLogger.Load().l }
