package util

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestColors(t *testing.T) {
	// Test that color variables are initialized
	if SuccessColor == nil {
		t.Error("SuccessColor should not be nil")
	}
	if ErrorColor == nil {
		t.Error("ErrorColor should not be nil")
	}
	if WarnColor == nil {
		t.Error("WarnColor should not be nil")
	}
	if DebugColor == nil {
		t.Error("DebugColor should not be nil")
	}
}

func newConsole(debug bool) (*Console, *bytes.Buffer, *bytes.Buffer) {
	color.NoColor = true
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &Console{Out: out, Err: errOut, Debug: debug}, out, errOut
}

func TestConsole(t *testing.T) {
	c, out, errOut := newConsole(false)

	c.Successf("Profile switched to %s", "dev")
	c.Warnf("careful")
	c.Error(errors.New("profile 'x' not found"))
	c.Debugf("hidden")

	if out.String() != "🦀 Profile switched to dev\n" {
		t.Errorf("Unexpected stdout: %q", out.String())
	}
	expected := "🦀 careful\n🦀 Error: profile 'x' not found\n"
	if errOut.String() != expected {
		t.Errorf("Unexpected stderr: %q, expected %q", errOut.String(), expected)
	}
}

func TestConsoleDebug(t *testing.T) {
	c, _, errOut := newConsole(true)

	c.Debugf("state file %s", "/home/me/.raph")
	if errOut.String() != "debug: state file /home/me/.raph\n" {
		t.Errorf("Unexpected debug output: %q", errOut.String())
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"Profile", "Region"}, [][]string{{"dev", "eu-west-1"}, {"default", "us-east-1"}})

	output := buf.String()
	for _, want := range []string{"PROFILE", "REGION", "dev", "eu-west-1", "default"} {
		if !strings.Contains(output, want) {
			t.Errorf("Table output missing %q:\n%s", want, output)
		}
	}
}
