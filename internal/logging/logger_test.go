package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"users-api/internal/config"
)

func TestNewWithOutput(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LogConfig
		wantLevel logrus.Level
		wantErr   bool
	}{
		{name: "info json", cfg: config.LogConfig{Level: "info", Format: "json"}, wantLevel: logrus.InfoLevel},
		{name: "debug text", cfg: config.LogConfig{Level: "debug", Format: "text"}, wantLevel: logrus.DebugLevel},
		{name: "invalid level", cfg: config.LogConfig{Level: "loud", Format: "json"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewWithOutput(tt.cfg, &bytes.Buffer{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewWithOutput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestJSONFormatterOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput(config.LogConfig{Level: "info", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("NewWithOutput() error = %v", err)
	}

	logger.WithField("user_id", "42").Info("lookup")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "lookup" {
		t.Errorf("msg = %v, want lookup", entry["msg"])
	}
	if entry["user_id"] != "42" {
		t.Errorf("user_id = %v, want 42", entry["user_id"])
	}
}

func TestWithServerless(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput(config.LogConfig{Level: "info", Format: "text"}, &buf)
	if err != nil {
		t.Fatalf("NewWithOutput() error = %v", err)
	}

	WithServerless(logger, &config.ServerlessConfig{IsLambda: false, FunctionName: "users"}).Info("local")
	if strings.Contains(buf.String(), "function_name") {
		t.Errorf("server mode should not add function fields: %s", buf.String())
	}

	buf.Reset()
	WithServerless(logger, &config.ServerlessConfig{IsLambda: true, FunctionName: "users", Stage: "prod"}).Info("lambda")
	if !strings.Contains(buf.String(), "function_name=users") {
		t.Errorf("expected function_name field, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "stage=prod") {
		t.Errorf("expected stage field, got %s", buf.String())
	}
}
