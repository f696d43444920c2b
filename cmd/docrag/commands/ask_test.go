// ABOUTME: Tests for ask and retrieve command structure
// ABOUTME: Verifies flags and argument validation without API calls
package commands

import (
	"bytes"
	"testing"
)

func TestNewAskCmd(t *testing.T) {
	cmd := NewAskCmd()

	if cmd.Use != "ask <question>" {
		t.Errorf("Use = %q", cmd.Use)
	}

	if cmd.Flags().Lookup("file") == nil {
		t.Error("--file flag not found")
	}
	if cmd.Flags().Lookup("top-k") == nil {
		t.Error("--top-k flag not found")
	}
}

func TestAskCmd_RequiresFile(t *testing.T) {
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"ask", "a question"})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error when --file is missing")
	}
}

func TestAskCmd_RequiresQuestion(t *testing.T) {
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"ask", "--file", "doc.txt"})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error when question argument is missing")
	}
}

func TestNewRetrieveCmd(t *testing.T) {
	cmd := NewRetrieveCmd()

	if cmd.Use != "retrieve <query>" {
		t.Errorf("Use = %q", cmd.Use)
	}

	if cmd.Flags().Lookup("file") == nil {
		t.Error("--file flag not found")
	}
	if cmd.Flags().Lookup("top-k") == nil {
		t.Error("--top-k flag not found")
	}
}

func TestRetrieveCmd_RequiresFile(t *testing.T) {
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"retrieve", "a query"})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error when --file is missing")
	}
}
