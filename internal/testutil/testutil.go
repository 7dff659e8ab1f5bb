// Package testutil provides shared test helpers for the StricklySoft result
// library.
//
// All helpers accept [testing.TB] for compatibility with both tests and
// benchmarks. Functions that halt the test on failure use [require] from
// testify; functions that record failures without stopping use [assert].
//
// Every helper calls t.Helper() so that test failure messages report the
// caller's file and line number rather than this package's.
//
// testutil does not import pkg/errors or pkg/result so that the in-package
// tests of both can use it. Helpers that need those types accept small
// structural interfaces instead.
package testutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StricklySoft/stricklysoft-result/internal/contract"
)

// Recover runs fn and returns the value it panicked with, or nil.
func Recover(fn func()) (r any) {
	defer func() {
		r = recover()
	}()
	fn()
	return nil
}

// RequireViolation halts the test unless fn panics with a contract
// violation of the given kind (ErrUninitialized, ErrWrongState or
// ErrInvalidArgument). It returns the violation for further checks.
//
// Example:
//
//	testutil.RequireViolation(t, sserr.ErrWrongState, func() {
//	    _ = result.Failure[int](errors.Permanent("a", "b")).Value()
//	})
func RequireViolation(t testing.TB, kind error, fn func(), msgAndArgs ...any) *contract.Violation {
	t.Helper()
	r := Recover(fn)
	require.NotNil(t, r, "expected a contract violation panic")
	v, ok := r.(*contract.Violation)
	require.True(t, ok, "expected *Violation panic, got %T: %v", r, r)
	require.ErrorIs(t, v, kind, msgAndArgs...)
	return v
}

// AssertViolation records a test failure (without halting) unless fn
// panics with a contract violation of the given kind. Use this in
// table-driven tests where you want to check all rows.
func AssertViolation(t testing.TB, kind error, fn func(), msgAndArgs ...any) bool {
	t.Helper()
	r := Recover(fn)
	v, ok := r.(*contract.Violation)
	if !assert.True(t, ok, "expected *Violation panic, got %T: %v", r, r) {
		return false
	}
	return assert.ErrorIs(t, v, kind, msgAndArgs...)
}

// AssertNoViolation records a test failure if fn panics.
func AssertNoViolation(t testing.TB, fn func(), msgAndArgs ...any) bool {
	t.Helper()
	return assert.NotPanics(t, fn, msgAndArgs...)
}

// stateful is satisfied by every result.Result instantiation.
type stateful interface {
	IsUninitialized() bool
	IsSuccess() bool
}

// RequireSuccess halts the test unless r is an initialized success.
func RequireSuccess(t testing.TB, r stateful) {
	t.Helper()
	require.False(t, r.IsUninitialized(), "result is uninitialized")
	require.True(t, r.IsSuccess(), "expected success, got %v", r)
}

// RequireFailure halts the test unless r is an initialized failure.
func RequireFailure(t testing.TB, r stateful) {
	t.Helper()
	require.False(t, r.IsUninitialized(), "result is uninitialized")
	require.False(t, r.IsSuccess(), "expected failure, got %v", r)
}

// RequireErrorCode halts the test if err is nil, holds no error carrying
// a Code method returning C, or carries a different code. Pass a typed
// code (sserr.Code) so C matches the Code method. This is the primary helper
// for validating errors produced by pkg/errors.
//
// Example:
//
//	_, err := loader.Load(nil)
//	testutil.RequireErrorCode(t, err, sserr.CodeInternalConfiguration)
func RequireErrorCode[C ~string](t testing.TB, err error, code C, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	var coded interface{ Code() C }
	require.True(t, errors.As(err, &coded), "expected an error with a code, got %T: %v", err, err)
	require.Equal(t, code, coded.Code(),
		"error code mismatch: got %q, want %q (error: %v)", coded.Code(), code, err)
}

// AssertErrorCode records a test failure (without halting) if err does not
// carry the expected code.
func AssertErrorCode[C ~string](t testing.TB, err error, code C, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Error(t, err, msgAndArgs...) {
		return false
	}
	var coded interface{ Code() C }
	if !assert.True(t, errors.As(err, &coded), "expected an error with a code, got %T: %v", err, err) {
		return false
	}
	return assert.Equal(t, code, coded.Code(),
		"error code mismatch: got %q, want %q (error: %v)", coded.Code(), code, err)
}

// TempConfigFile creates a temporary file with the given content and
// extension (e.g., ".yaml", ".json") inside t.TempDir(). The file is
// automatically cleaned up when the test finishes.
//
// The file is created with mode 0600 (owner read/write only).
func TempConfigFile(t testing.TB, content, ext string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config"+ext)
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err, "failed to write temp config file %s", path)
	return path
}

// SetEnv sets an environment variable and registers a cleanup function
// that restores the original value (or unsets it if it was not set)
// when the test completes.
//
// This is safe for use in parallel tests only if each test sets a
// unique environment variable. For shared variables, do not use
// t.Parallel().
func SetEnv(t testing.TB, key, value string) {
	t.Helper()
	prev, existed := os.LookupEnv(key)
	err := os.Setenv(key, value)
	require.NoError(t, err, "failed to set env var %s", key)
	t.Cleanup(func() {
		if existed {
			_ = os.Setenv(key, prev)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

// UnsetEnv unsets an environment variable and registers a cleanup
// function that restores the original value when the test completes.
func UnsetEnv(t testing.TB, key string) {
	t.Helper()
	prev, existed := os.LookupEnv(key)
	err := os.Unsetenv(key)
	require.NoError(t, err, "failed to unset env var %s", key)
	t.Cleanup(func() {
		if existed {
			_ = os.Setenv(key, prev)
		}
	})
}

// LogBuffer is a JSON slog logger writing to memory.
type LogBuffer struct {
	Logger *slog.Logger
	buf    *bytes.Buffer
}

// NewLogBuffer returns a LogBuffer that records every level.
func NewLogBuffer() *LogBuffer {
	buf := &bytes.Buffer{}
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &LogBuffer{Logger: slog.New(h), buf: buf}
}

// Entries decodes every record written so far.
func (l *LogBuffer) Entries(t testing.TB) []map[string]any {
	t.Helper()
	var entries []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(l.buf.Bytes()))
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry), "invalid log line: %s", sc.Text())
		entries = append(entries, entry)
	}
	require.NoError(t, sc.Err())
	return entries
}

// AssertLogContains asserts that some record has the given message.
func (l *LogBuffer) AssertLogContains(t testing.TB, msg string) bool {
	t.Helper()
	for _, e := range l.Entries(t) {
		if e["msg"] == msg {
			return true
		}
	}
	return assert.Fail(t, "log message not found", "want %q in:\n%s", msg, l.buf.String())
}
