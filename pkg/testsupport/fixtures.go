package testsupport

import (
	"bytes"
	"context"
	"embed"
	"io"
	"testing"

	"github.com/goliatone/go-footer/pkg/content"
	"github.com/goliatone/go-footer/pkg/model"
)

//go:embed testdata/*
var fixtures embed.FS

// Fixture returns the bytes of a shared fixture such as "footer.yaml".
func Fixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := fixtures.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return data
}

// FixtureDocument wraps a shared fixture in a content.Document.
func FixtureDocument(t *testing.T, name string) content.Document {
	t.Helper()

	doc, err := content.NewDocument(content.SourceFromFS(name), Fixture(t, name))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

// LoadProps decodes a shared fixture with the trusted policy so assertions
// can match the authored markup.
func LoadProps(t *testing.T, name string) model.Props {
	t.Helper()

	props, err := FixtureDocument(t, name).Props(content.PolicyTrusted)
	if err != nil {
		t.Fatalf("decode props: %v", err)
	}
	return props
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
