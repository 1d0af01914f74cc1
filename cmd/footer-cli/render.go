package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	footer "github.com/goliatone/go-footer"
	"github.com/goliatone/go-footer/pkg/content"
	"github.com/goliatone/go-footer/pkg/orchestrator"
	"github.com/goliatone/go-footer/pkg/render"
)

func newRenderCmd(flags *globalFlags) *cobra.Command {
	var (
		rendererName string
		output       string
		locale       string
		spriteURL    string
	)

	cmd := &cobra.Command{
		Use:   "render <source>",
		Short: "Render a content document to HTML",
		Long: `Render a footer content document (file path or URL) to HTML.

Example usage:
  footer-cli render footer.yaml                      # vanilla renderer to stdout
  footer-cli render footer.json --renderer=nodes     # gomponents renderer
  footer-cli render https://cms.example/footer.json --allow-url -o footer.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := content.SourceFromString(args[0])
			if err != nil {
				return err
			}
			logger := flags.logger()

			gen := footer.NewOrchestrator(
				orchestrator.WithLoader(footer.NewLoader(flags.loaderOptions()...)),
				orchestrator.WithPolicy(flags.policy()),
				orchestrator.WithLogger(logger),
			)
			out, err := gen.Generate(cmd.Context(), orchestrator.Request{
				Source:   src,
				Renderer: rendererName,
				RenderOptions: render.RenderOptions{
					Locale:    locale,
					SpriteURL: spriteURL,
				},
			})
			if err != nil {
				return err
			}

			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			logger.Info().Str("path", output).Int("bytes", len(out)).Msg("footer written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&rendererName, "renderer", "r", "", "Renderer to use (vanilla, nodes)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().StringVar(&locale, "locale", "", "Locale forwarded to translators")
	cmd.Flags().StringVar(&spriteURL, "sprite", "", "Icon sprite sheet URL")
	return cmd
}
