package notify

import (
	abci "github.com/cometbft/cometbft/abci/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
)

// Sink receives registry events. Delivery is fire-and-forget: a sink
// must not fail the emitting operation, so Emit returns nothing.
type Sink interface {
	Emit(event abci.Event)
}

type NopSink struct{}

func (NopSink) Emit(event abci.Event) {}

// LogSink writes every event to the node log.
type LogSink struct {
	logger cmtlog.Logger
}

func NewLogSink(logger cmtlog.Logger) (s *LogSink) {
	logger = logger.With("module", "events")
	s = &LogSink{
		logger: logger,
	}
	return
}

func (s *LogSink) Emit(event abci.Event) {
	kv := make([]any, 0, len(event.Attributes)*2)
	for _, attr := range event.Attributes {
		kv = append(kv, attr.Key, attr.Value)
	}
	s.logger.Info(event.Type, kv...)
}

// MultiSink fans one event out to several observers in order.
type MultiSink []Sink

func (m MultiSink) Emit(event abci.Event) {
	for _, s := range m {
		s.Emit(event)
	}
}
