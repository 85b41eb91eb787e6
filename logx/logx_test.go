package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestConfigureReplacesSharedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	Configure(l)
	defer Configure(log.NewWithOptions(&bytes.Buffer{}, log.Options{Level: log.WarnLevel}))

	Get().Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("buf = %q, want it to contain \"hello\"", buf.String())
	}
}

func TestSetLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	Configure(l)
	defer Configure(log.NewWithOptions(&bytes.Buffer{}, log.Options{Level: log.WarnLevel}))

	SetLevel(log.ErrorLevel)
	Get().Info("should be filtered")
	if buf.Len() != 0 {
		t.Fatalf("buf = %q, want empty after raising level to Error", buf.String())
	}

	Get().Error("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Fatalf("buf = %q, want it to contain the error line", buf.String())
	}
}

func TestWithScopesKeyValuesOntoEveryLine(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	Configure(l)
	defer Configure(log.NewWithOptions(&bytes.Buffer{}, log.Options{Level: log.WarnLevel}))

	With("component", "renderer").Info("flush")
	if !strings.Contains(buf.String(), "component") || !strings.Contains(buf.String(), "renderer") {
		t.Fatalf("buf = %q, want it to contain the scoped component key/value", buf.String())
	}
}
