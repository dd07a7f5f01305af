// Command catalogctl manages the product catalog file directly, without
// going through the HTTP service.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ProductCatalog/internal/catalog"
	"ProductCatalog/internal/config"
	"ProductCatalog/pkg/kit"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	file    string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "catalogctl - manage the product catalog file",
		Long: `catalogctl reads and edits the JSON product catalog served by the
catalog service. Every change is written back to the file immediately.

The catalog service only loads the file at startup; restart it to pick up
changes made here.

Commands that change the catalog refuse to run when the file exists but
cannot be read or parsed, since writing would replace its contents.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("catalogctl version {{.Version}}\n")

	defaultFile := os.Getenv(config.EnvCatalogFile)
	if defaultFile == "" {
		defaultFile = config.DefaultCatalogFile
	}
	root.PersistentFlags().StringVarP(&opts.file, "file", "f", defaultFile, "path to the catalog JSON file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log store activity to stderr")

	root.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newAddCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
		newImportCmd(opts),
	)
	return root
}

func (o *rootOptions) logger() *zap.Logger {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	return kit.NewLogger("catalogctl", level)
}

func (o *rootOptions) open() (*catalog.FileStore, func()) {
	log := o.logger()
	return catalog.Open(o.file, log), func() { _ = log.Sync() }
}

var errUnreadableCatalog = errors.New("catalog file could not be loaded, refusing to overwrite it")

// openForWrite is open for commands that persist changes.
func (o *rootOptions) openForWrite() (*catalog.FileStore, func(), error) {
	store, done := o.open()
	if err := store.LoadErr(); err != nil {
		done()
		return nil, nil, fmt.Errorf("%w: %w", errUnreadableCatalog, err)
	}
	return store, done, nil
}
