package cmd

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestInit(t *testing.T) {
	res, err := execute(t, "", "-I", "/opt/vc", "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	data, err := os.ReadFile(res.config)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(string(data), "# vcalc configuration.") {
		t.Errorf("missing header comment: %q", data)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}

	path, ok := doc["path"].([]any)
	if !ok || len(path) != 1 || path[0] != "/opt/vc" {
		t.Errorf("path = %#v", doc["path"])
	}

	if _, ok := doc["help"]; ok {
		t.Error("help flag must not be written")
	}
}

func TestInit_Exists(t *testing.T) {
	res, err := execute(t, "", "init")
	if err != nil {
		t.Fatal(err)
	}

	err = (&Init{}).write(t.Context(), res.config)
	if !errors.Is(err, ErrWriteConfig) || !errors.Is(err, ErrFileExists) {
		t.Errorf("error = %v, want existing file error", err)
	}

	if err := (&Init{Force: true}).write(t.Context(), res.config); err != nil {
		t.Errorf("forced write: %v", err)
	}
}
