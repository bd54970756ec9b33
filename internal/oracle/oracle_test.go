package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/PEEKING-web/steam-tracker/internal/metrics"
)

type fixedOracle struct {
	reply string
	err   error
}

func (f fixedOracle) Complete(context.Context, string, string, Options) (string, error) {
	return f.reply, f.err
}

func TestDisabledAlwaysFails(t *testing.T) {
	if _, err := (Disabled{}).Complete(context.Background(), "s", "u", Options{}); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestWithTelemetryRecordsCalls(t *testing.T) {
	rec := metrics.NewRecorder()

	ok := WithTelemetry(fixedOracle{reply: "{}"}, "m", rec, nil)
	reply, err := ok.Complete(context.Background(), "s", "u", Options{})
	if err != nil || reply != "{}" {
		t.Fatalf("expected passthrough reply, got %q (%v)", reply, err)
	}

	boom := errors.New("boom")
	failing := WithTelemetry(fixedOracle{err: boom}, "m", rec, nil)
	if _, err := failing.Complete(context.Background(), "s", "u", Options{}); !errors.Is(err, boom) {
		t.Fatalf("expected error passthrough, got %v", err)
	}

	snap := rec.OracleSnapshot()
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected oracle stats %+v", snap)
	}
}
