package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixfmt"
)

// NewPixelCmd converts a single pixel given as hex bytes.
func NewPixelCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pixel SRC DST HEX",
		Short: "convert one pixel",
		Long: "Converts one pixel given as hex bytes in storage order, e.g.\n" +
			"  pixconv pixel RGBA8 RGBAPremul ff000080\n" +
			"prints 80000080.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := pixfmt.ParseFormat(args[0])
			if err != nil {
				return err
			}
			dst, err := pixfmt.ParseFormat(args[1])
			if err != nil {
				return err
			}
			in, err := hex.DecodeString(strings.TrimPrefix(strings.ReplaceAll(args[2], " ", ""), "0x"))
			if err != nil {
				return fmt.Errorf("pixel bytes: %w", err)
			}

			path, err := pixfmt.Resolve(src, dst)
			if err != nil {
				return err
			}
			out, err := pixfmt.ConvertPixel(src, dst, in)
			if err != nil {
				return err
			}
			slog.DebugContext(ctx, "converted pixel", "path", path, "in", hex.EncodeToString(in))
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
			return nil
		},
	}
	return cmd
}
