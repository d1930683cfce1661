package utils

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLogLevelNothing(t *testing.T) {
	b := &bytes.Buffer{}
	log.SetOutput(b)
	defer log.SetOutput(os.Stdout)
	defer DefaultLogger.SetLogLevel(LogLevelNothing)

	DefaultLogger.SetLogLevel(LogLevelNothing)
	DefaultLogger.Debugf("debug")
	DefaultLogger.Infof("info")
	DefaultLogger.Errorf("err")
	require.Empty(t, b.String())
}

func TestLogLevelError(t *testing.T) {
	b := &bytes.Buffer{}
	log.SetOutput(b)
	defer log.SetOutput(os.Stdout)
	defer DefaultLogger.SetLogLevel(LogLevelNothing)

	DefaultLogger.SetLogLevel(LogLevelError)
	DefaultLogger.Debugf("debug")
	DefaultLogger.Infof("info")
	DefaultLogger.Errorf("err")
	require.Contains(t, b.String(), "err\n")
	require.NotContains(t, b.String(), "info")
	require.NotContains(t, b.String(), "debug")
}

func TestLogLevelInfo(t *testing.T) {
	b := &bytes.Buffer{}
	log.SetOutput(b)
	defer log.SetOutput(os.Stdout)
	defer DefaultLogger.SetLogLevel(LogLevelNothing)

	DefaultLogger.SetLogLevel(LogLevelInfo)
	DefaultLogger.Debugf("debug")
	DefaultLogger.Infof("info")
	DefaultLogger.Errorf("err")
	require.Contains(t, b.String(), "err\n")
	require.Contains(t, b.String(), "info\n")
	require.NotContains(t, b.String(), "debug")
}

func TestLogLevelDebug(t *testing.T) {
	b := &bytes.Buffer{}
	log.SetOutput(b)
	defer log.SetOutput(os.Stdout)
	defer DefaultLogger.SetLogLevel(LogLevelNothing)

	DefaultLogger.SetLogLevel(LogLevelDebug)
	require.True(t, DefaultLogger.Debug())
	DefaultLogger.Debugf("debug")
	DefaultLogger.Infof("info")
	DefaultLogger.Errorf("err")
	require.Contains(t, b.String(), "err\n")
	require.Contains(t, b.String(), "info\n")
	require.Contains(t, b.String(), "debug\n")
}

func TestLogTimestamps(t *testing.T) {
	format := "Jan 2, 2006"
	b := &bytes.Buffer{}
	log.SetOutput(b)
	defer log.SetOutput(os.Stdout)
	defer DefaultLogger.SetLogLevel(LogLevelNothing)

	DefaultLogger.SetLogLevel(LogLevelInfo)
	DefaultLogger.SetLogTimeFormat(format)
	DefaultLogger.Infof("info")
	require.Contains(t, b.String(), time.Now().Format(format))
	require.Contains(t, b.String(), "info\n")
}

func TestLogPrefixes(t *testing.T) {
	b := &bytes.Buffer{}
	log.SetOutput(b)
	defer log.SetOutput(os.Stdout)
	defer DefaultLogger.SetLogLevel(LogLevelNothing)

	DefaultLogger.SetLogLevel(LogLevelDebug)
	prefixLogger := DefaultLogger.WithPrefix("prefix")
	prefixLogger.Debugf("debug")
	require.Contains(t, b.String(), "prefix")
	require.Contains(t, b.String(), "debug\n")

	b.Reset()
	prefixPrefixLogger := prefixLogger.WithPrefix("prefix2")
	prefixPrefixLogger.Debugf("debug")
	require.Contains(t, b.String(), "prefix prefix2")
}

func TestReadLoggingEnv(t *testing.T) {
	defer os.Unsetenv(logEnv)

	os.Setenv(logEnv, "debug")
	require.Equal(t, LogLevelDebug, readLoggingEnv())
	os.Setenv(logEnv, "info")
	require.Equal(t, LogLevelInfo, readLoggingEnv())
	os.Setenv(logEnv, "error")
	require.Equal(t, LogLevelError, readLoggingEnv())
	os.Setenv(logEnv, "")
	require.Equal(t, LogLevelNothing, readLoggingEnv())
	os.Setenv(logEnv, "asdf")
	require.Equal(t, LogLevelNothing, readLoggingEnv())
}
