package service

import (
	"github.com/sirupsen/logrus"
)

// EventSink receives one (type, message) pair per significant operation.
// Implementations must not block or fail the caller.
type EventSink interface {
	Record(eventType, message string)
}

// NopEventSink discards every event
type NopEventSink struct{}

func (NopEventSink) Record(string, string) {}

type multiEventSink struct {
	sinks []EventSink
}

// NewMultiEventSink fans each event out to every non-nil sink in order.
func NewMultiEventSink(sinks ...EventSink) EventSink {
	m := &multiEventSink{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

func (m *multiEventSink) Record(eventType, message string) {
	for _, s := range m.sinks {
		s.Record(eventType, message)
	}
}

type logEventSink struct {
	log *logrus.Logger
}

// NewLogEventSink writes events as structured log entries
func NewLogEventSink(log *logrus.Logger) EventSink {
	return &logEventSink{log: log}
}

func (s *logEventSink) Record(eventType, message string) {
	s.log.WithFields(logrus.Fields{
		"event": eventType,
	}).Info(message)
}
