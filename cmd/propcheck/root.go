package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "propcheck",
		Short: "Validate JSON or YAML documents against a property schema",
		Long: `propcheck checks a flat JSON or YAML object against a schema document:
declared properties must satisfy their rules, required properties must be
present and undeclared properties are rejected.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging on stderr")
	root.PersistentFlags().String("lang", os.Getenv("PROPCHECK_LANG"), "message language (en, ja); defaults to $PROPCHECK_LANG")
	root.AddCommand(newCheckCmd(), newVersionCmd())
	return root
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
