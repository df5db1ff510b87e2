package command

import (
	"testing"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/config"
)

// Test command initialization and registration
func TestCommandsRegistered(t *testing.T) {
	cfg = &config.Config{}

	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}

	expectedCommands := map[string]bool{
		"send":   false,
		"seed":   false,
		"recent": false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := expectedCommands[cmd.Name()]; ok {
			expectedCommands[cmd.Name()] = true
		}
	}

	for cmdName, found := range expectedCommands {
		if !found {
			t.Errorf("expected command '%s' to be registered with root command", cmdName)
		}
	}
}

func TestSendCommandFlags(t *testing.T) {
	for _, flag := range []string{"json", "file", "endpoint", "token"} {
		if sendCmd.Flags().Lookup(flag) == nil {
			t.Errorf("send command should have --%s flag", flag)
		}
	}
}

func TestSeedCommandFlags(t *testing.T) {
	for _, flag := range []string{"count", "interval", "endpoint", "token"} {
		if seedCmd.Flags().Lookup(flag) == nil {
			t.Errorf("seed command should have --%s flag", flag)
		}
	}

	if seedCmd.Flags().Lookup("count").DefValue != "10" {
		t.Errorf("seed --count default = %s, want 10", seedCmd.Flags().Lookup("count").DefValue)
	}
}

func TestRecentCommandFlags(t *testing.T) {
	for _, flag := range []string{"collector-url", "api-key", "limit", "output"} {
		if recentCmd.Flags().Lookup(flag) == nil {
			t.Errorf("recent command should have --%s flag", flag)
		}
	}

	if recentCmd.Flags().Lookup("output").DefValue != "table" {
		t.Errorf("recent --output default = %s, want table", recentCmd.Flags().Lookup("output").DefValue)
	}
}

func TestReadEventData_MutuallyExclusive(t *testing.T) {
	if _, err := readEventData(sendCmd, `{"a":1}`, "file.json"); err == nil {
		t.Error("expected error when both --json and --file are set")
	}
}

func TestReadEventData_JSONFlag(t *testing.T) {
	data, err := readEventData(sendCmd, `{"a":1}`, "")
	if err != nil {
		t.Fatalf("readEventData() error = %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("readEventData() = %q, want raw JSON", data)
	}
}
