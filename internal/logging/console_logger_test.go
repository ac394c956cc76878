package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vvka-141/dogsearch/pkg/dogsearch"
)

var (
	_ dogsearch.Logger = (*ConsoleLogger)(nil)
	_ dogsearch.Logger = (*NullLogger)(nil)
)

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, true)
	logger.Verbose("scanned %d windows", 60)

	expected := "[VERBOSE] scanned 60 windows\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, false)
	logger.Verbose("scanned %d windows", 60)

	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestConsoleLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, false)
	logger.Info("puzzle: %dx%d", 14, 7)

	expected := "puzzle: 14x7\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, false)
	logger.Error("invalid puzzle")

	expected := "[ERROR] invalid puzzle\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_LinesInCallOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, true)

	logger.Info("message %d", 1)
	logger.Verbose("verbose %d", 2)
	logger.Error("error %d", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	expected := []string{"message 1", "[VERBOSE] verbose 2", "[ERROR] error 3"}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %q", len(expected), len(lines), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("Line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}

func TestNullLogger_DiscardsAllMessages(t *testing.T) {
	logger := NewNullLogger()
	logger.Verbose("verbose")
	logger.Info("info")
	logger.Error("error")
}
