package service

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const activityTimeLayout = "2006-01-02T15:04:05.999999999"

// LineAppender appends a line to a named file
type LineAppender interface {
	AppendLine(name, line string) error
}

type activityLogSink struct {
	out  LineAppender
	file string
	log  *logrus.Logger
	now  func() time.Time
}

// NewActivityLogSink appends "<timestamp> - Event: <type> | Data: <message>" lines to file.
func NewActivityLogSink(out LineAppender, file string, log *logrus.Logger) EventSink {
	return &activityLogSink{out: out, file: file, log: log, now: time.Now}
}

func (s *activityLogSink) Record(eventType, message string) {
	line := FormatActivityLine(s.now(), eventType, message)
	if err := s.out.AppendLine(s.file, line); err != nil {
		s.log.Warnf("Failed to append activity log: %+v", err)
	}
}

// FormatActivityLine renders one activity log line
func FormatActivityLine(at time.Time, eventType, message string) string {
	return fmt.Sprintf("%s - Event: %s | Data: %s", at.Format(activityTimeLayout), eventType, message)
}
