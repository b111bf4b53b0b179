package chain

import (
	"context"
	"log/slog"

	"github.com/bassosimone/slogstub"
	"github.com/ib-77/scope/pkg/scope/core"
)

// newCapturingConfig returns a config whose logger captures every record
// and whose span ids are always spanID.
func newCapturingConfig(spanID string) (*core.Config, *[]slog.Record) {
	var records []slog.Record
	handler := &slogstub.FuncHandler{
		EnabledFunc: func(ctx context.Context, level slog.Level) bool {
			return true
		},
		HandleFunc: func(ctx context.Context, record slog.Record) error {
			records = append(records, record)
			return nil
		},
	}
	cfg := core.NewConfigWithLogger(slog.New(handler))
	cfg.NewSpanID = func() string { return spanID }
	return cfg, &records
}

func recordAttrs(record slog.Record) map[string]any {
	attrs := map[string]any{}
	record.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	return attrs
}
