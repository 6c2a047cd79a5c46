package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "gitville",
		Short:        "Isometric town renderer for stargazer snapshots",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(viewCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(layoutCmd())
	rootCmd.AddCommand(worldCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [project-dir]",
		Short: "Render the snapshot to a standalone SVG document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0], out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default from gitville.yaml)")
	return cmd
}

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [project-dir]",
		Short: "Open the interactive town window",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runView(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [project-dir]",
		Short: "Serve the town over HTTP with live reload",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runServe(args[0], addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from gitville.yaml)")
	return cmd
}

func layoutCmd() *cobra.Command {
	var namesFile string
	var add []string
	var contributors []string

	cmd := &cobra.Command{
		Use:   "layout [project-dir]",
		Short: "Generate or grow the Grand Cross town plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runLayout(args[0], namesFile, add, contributors)
		},
	}

	cmd.Flags().StringVar(&namesFile, "names", "", "file with one inhabitant name per line")
	cmd.Flags().StringArrayVar(&add, "add", nil, "append a single inhabitant (repeatable)")
	cmd.Flags().StringArrayVar(&contributors, "contributor", nil, "grant a name the terraced upgrade (repeatable)")
	return cmd
}

func worldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "world [weather|daynight] [project-dir]",
		Short: "Roll the weather or toggle day and night",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runWorld(args[0], args[1])
		},
	}
}
