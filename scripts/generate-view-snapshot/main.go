package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	footer "github.com/goliatone/go-footer"
	"github.com/goliatone/go-footer/pkg/content"
	"github.com/goliatone/go-footer/pkg/model"
	"github.com/goliatone/go-footer/pkg/orchestrator"
	"github.com/goliatone/go-footer/pkg/render"
)

const snapshotRendererName = "view-snapshot"

// snapshotRenderer writes the renderer-neutral view model instead of markup,
// which makes layout regressions easy to diff.
type snapshotRenderer struct {
	path string
}

func (r *snapshotRenderer) Name() string {
	return snapshotRendererName
}

func (r *snapshotRenderer) ContentType() string {
	return "application/json"
}

func (r *snapshotRenderer) Render(ctx context.Context, props model.Props, opts render.RenderOptions) ([]byte, error) {
	view, err := render.BuildView(ctx, props, opts)
	if err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return nil, err
	}
	return payload, nil
}

func main() {
	var (
		sourcePath = flag.String("source", "examples/fixtures/footer.yaml", "content document path")
		outputPath = flag.String("output", "footer_view.json", "output path for the serialized view")
		trusted    = flag.Bool("trusted", false, "skip sanitising HTML fields")
	)
	flag.Parse()

	registry := render.NewRegistry()
	registry.MustRegister(&snapshotRenderer{path: *outputPath})

	policy := content.PolicySanitize
	if *trusted {
		policy = content.PolicyTrusted
	}

	orch := footer.NewOrchestrator(
		orchestrator.WithLoader(footer.NewLoader(content.WithSchemaValidation(true))),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(snapshotRendererName),
		orchestrator.WithPolicy(policy),
	)

	_, err := orch.Generate(context.Background(), orchestrator.Request{
		Source: content.SourceFromFile(*sourcePath),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to snapshot view: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Wrote view snapshot to %s\n", *outputPath)
}
