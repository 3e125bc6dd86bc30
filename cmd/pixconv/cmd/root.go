package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixfmt"
)

func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pixconv",
		Short:         "inspect pixel formats and convert pixel data",
		Long:          "pixconv lists the pixel formats pixfmt understands, shows which pairs convert, and converts single pixels, raw buffers and image files.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel, _ := cmd.Flags().GetString("log-level")

			var level slog.Level
			err := level.UnmarshalText([]byte(strings.ToUpper(logLevel)))
			if err != nil {
				level = slog.LevelInfo
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			slog.SetDefault(logger)
			pixfmt.SetLogger(logger)

			if err != nil {
				slog.WarnContext(ctx, "Invalid log level, defaulting to INFO", "level", logLevel, "error", err)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd.OutOrStdout(), cmd, 0)
		},
	}
	cmd.AddCommand(
		NewVersionCmd(ctx, gitsha),
		NewFormatsCmd(ctx),
		NewMatrixCmd(ctx),
		NewPixelCmd(ctx),
		NewConvertCmd(ctx),
	)
	pf := cmd.PersistentFlags()
	pf.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	pf.Int("workers", 0, "conversion workers (0 = GOMAXPROCS)")
	return cmd
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printCommandTree(w io.Writer, cmd *cobra.Command, indent int) {
	fmt.Fprintln(w, strings.Repeat("\t", indent), cmd.Use+":", cmd.Short)
	for _, subCmd := range cmd.Commands() {
		printCommandTree(w, subCmd, indent+1)
	}
}

func NewVersionCmd(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "library version and git sha for this build",
		Long:  "library version and git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pixfmt %s (%s)\n", pixfmt.Version, gitsha)
		},
	}
	return cmd
}
