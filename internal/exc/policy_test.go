package exc

import (
	"bytes"
	"os"
	"testing"

	"go.uber.org/zap"
)

func TestNilSinksResetToDefaults(t *testing.T) {
	SetOutput(new(bytes.Buffer))
	SetOutput(nil)
	if output() != os.Stderr {
		t.Error("nil writer should reset the report sink to stderr")
	}

	SetLogger(zap.NewExample())
	SetLogger(nil)
	if logger() != nopLogger {
		t.Error("nil logger should reset the log sink to the no-op logger")
	}
}

func TestAdditionalOutputRoundTrip(t *testing.T) {
	defer SetAdditionalOutput("")
	SetAdditionalOutput("rank 3 of 16")
	if got := AdditionalOutput(); got != "rank 3 of 16" {
		t.Errorf("AdditionalOutput() = %q", got)
	}
	SetAdditionalOutput("")
	if got := AdditionalOutput(); got != "" {
		t.Errorf("AdditionalOutput() = %q after reset", got)
	}
}
