package testutil

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

// SilenceLogs discards logrus output for the duration of the test
func SilenceLogs(t *testing.T) {
	t.Helper()
	out := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	t.Cleanup(func() { logrus.SetOutput(out) })
}
