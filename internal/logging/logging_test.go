package logging

import (
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"defaults", "info", "console", false},
		{"json", "debug", "json", false},
		{"bad level", "loud", "console", true},
		{"bad format", "info", "xml", true},
		{"empty level", "", "console", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Level: tt.level, Format: tt.format}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger, err := New(&Config{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if logger == nil {
		t.Fatal("New() returned nil logger")
	}
	logger.Debug("test entry")
}

func TestNew_NilConfigUsesDefaults(t *testing.T) {
	logger, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) failed: %v", err)
	}
	if logger == nil {
		t.Fatal("New(nil) returned nil logger")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(&Config{Level: "nope", Format: "console"}); err == nil {
		t.Error("New() should fail for an invalid level")
	}
}
