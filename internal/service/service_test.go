package service

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// pinnedNow is the reference time used across analyzer tests
var pinnedNow = time.Date(2025, 7, 13, 14, 36, 0, 0, time.UTC)

func newTestService() *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(logger, FixedClock(pinnedNow))
}

func strPtr(s string) *string {
	return &s
}

func TestAnalysisErrorWrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := error(&AnalysisError{Analyzer: "expense", Err: cause})
	assert.Equal(t, "Error generating expense suggestions: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	var ae *AnalysisError
	assert.True(t, errors.As(err, &ae))
	assert.Equal(t, "expense", ae.Analyzer)
}

func TestNewServiceDefaultsToWallClock(t *testing.T) {
	svc := NewService(logrus.New(), nil)
	assert.WithinDuration(t, time.Now(), svc.now(), time.Minute)
}
