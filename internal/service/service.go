package service

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Clock returns the current time. Analyzers never read the wall clock
// directly so that date windows can be pinned.
type Clock func() time.Time

// FixedClock returns a Clock that always reports t
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// AnalysisError reports an unexpected fault while computing suggestions
type AnalysisError struct {
	Analyzer string
	Err      error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("Error generating %s suggestions: %v", e.Analyzer, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// Service computes financial suggestions from request-supplied records
type Service struct {
	log *logrus.Logger
	now Clock
}

// NewService initializes a new service. A nil clock uses time.Now.
func NewService(log *logrus.Logger, now Clock) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{log: log, now: now}
}

// recoverFault turns a panic inside an analyzer into an AnalysisError
func (s *Service) recoverFault(analyzer string, err *error) {
	if r := recover(); r != nil {
		s.log.WithField("analyzer", analyzer).Errorf("Analyzer panicked: %v", r)
		*err = &AnalysisError{Analyzer: analyzer, Err: fmt.Errorf("%v", r)}
	}
}

func (s *Service) logResult(analyzer string, records, suggestions int) {
	s.log.WithFields(logrus.Fields{
		"analyzer":    analyzer,
		"records":     records,
		"suggestions": suggestions,
	}).Debug("Suggestions generated")
}
