package logging

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	logger := SetupLogging()

	assert.Equal(t, logrus.InfoLevel, logger.Level)
	formatter, ok := logger.Formatter.(*logrus.JSONFormatter)
	require.True(t, ok)
	assert.Equal(t, "loglevel", formatter.FieldMap[logrus.FieldKeyLevel])
}

func TestLogData_FieldsAndRequestID(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	logData := NewLogData(logger)

	logData.AddData("transactionCount", 3)
	stop := logData.AddTiming("loadMs")
	stop()

	entry := logData.Log()

	assert.Equal(t, 3, entry.Data["transactionCount"])
	assert.Contains(t, entry.Data, "loadMs")
	assert.NotEmpty(t, logData.RequestID())
	assert.Equal(t, logData.RequestID(), entry.Data["requestID"])
	assert.NotEqual(t, logData.RequestID(), NewLogData(logger).RequestID())
}

func TestGetLogData(t *testing.T) {
	logger, _ := logtest.NewNullLogger()

	assert.Nil(t, GetLogData(context.Background()))

	logData := NewLogData(logger)
	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
}

func TestLoggingWrapper(t *testing.T) {
	logger, hook := logtest.NewNullLogger()

	ok := LoggingWrapper("Ok", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(req.Context()))
		w.WriteHeader(http.StatusOK)
		return nil
	})
	ok(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "Handler.Ok.Complete", hook.LastEntry().Message)
	assert.Contains(t, hook.LastEntry().Data, "duration")

	failing := LoggingWrapper("Bad", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		return errors.New("boom")
	})
	failing(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "Handler.Bad.Error", hook.LastEntry().Message)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
