package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderCommand_WritesHTML(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "footer.yaml")
	doc := "sections:\n  - label: Help\n    children:\n      - label: FAQ\n        href: /faq\n"
	if err := os.WriteFile(src, []byte(doc), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	out, err := execute(t, "render", src, "--renderer", "nodes")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `href="/faq"`) {
		t.Fatalf("expected rendered link, got %s", out)
	}

	dest := filepath.Join(dir, "footer.html")
	if _, err := execute(t, "render", src, "-o", dest); err != nil {
		t.Fatalf("render to file: %v", err)
	}
	written, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(written), "<footer") {
		t.Fatalf("expected footer markup in %s", dest)
	}
}

func TestRenderCommand_RejectsURLWithoutFlag(t *testing.T) {
	if _, err := execute(t, "render", "https://example.com/footer.json"); err == nil {
		t.Fatalf("expected error when HTTP is disabled")
	}
}

func TestSchemaCommand_PrintsJSON(t *testing.T) {
	out, err := execute(t, "schema")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("schema output is not JSON: %v", err)
	}
	if decoded["title"] != "Footer" {
		t.Fatalf("unexpected schema title: %v", decoded["title"])
	}
}

func TestInitCommand_RefusesToOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "footer.yaml")
	if err := os.WriteFile(dest, []byte("sections: []\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := execute(t, "init", "-o", dest); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
}
