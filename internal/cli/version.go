package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", orNA(a.buildInfo.BuildVersion()))
			fmt.Fprintf(out, "Build date: %s\n", orNA(a.buildInfo.BuildDate()))
			fmt.Fprintf(out, "Build commit: %s\n", orNA(a.buildInfo.BuildCommit()))
		},
	}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
