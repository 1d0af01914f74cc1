package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-footer/pkg/content"
)

type globalFlags struct {
	verbose  bool
	allowURL bool
	timeout  time.Duration
	validate bool
	trusted  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "footer-cli",
		Short: "Render and preview storefront footers",
		Long: `footer-cli renders a storefront footer from a JSON or YAML content
document, serves a live preview, prints the content schema and scaffolds new
documents interactively.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&flags.allowURL, "allow-url", false, "Allow loading content documents over HTTP(S)")
	pf.DurationVar(&flags.timeout, "timeout", 10*time.Second, "HTTP timeout for remote content documents")
	pf.BoolVar(&flags.validate, "validate", false, "Validate content documents against the schema")
	pf.BoolVar(&flags.trusted, "trusted", false, "Render HTML fields without sanitising them")

	root.AddCommand(
		newRenderCmd(flags),
		newServeCmd(flags),
		newSchemaCmd(),
		newInitCmd(),
	)
	return root
}

func (f *globalFlags) logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if f.verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func (f *globalFlags) loaderOptions() []content.LoaderOption {
	opts := []content.LoaderOption{content.WithSchemaValidation(f.validate)}
	if f.allowURL {
		opts = append(opts, content.WithHTTPFallback(f.timeout))
	}
	return opts
}

func (f *globalFlags) policy() content.Policy {
	if f.trusted {
		return content.PolicyTrusted
	}
	return content.PolicySanitize
}
