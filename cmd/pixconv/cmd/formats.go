package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/gogpu/gputypes"
	"github.com/spf13/cobra"

	"github.com/gogpu/pixfmt"
)

// NewFormatsCmd prints the format catalogue.
func NewFormatsCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "list pixel formats",
		Long:  "Lists every pixel format with its storage width, channels, numeric domain, alpha mode, byte layout and matching WebGPU texture format.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tBYTES\tCHANNELS\tDOMAIN\tBITS\tALPHA\tLAYOUT\tTEXTURE\tENCODE")
			for _, f := range pixfmt.Formats() {
				info := f.Info()
				encode := "yes"
				if pixfmt.IsDecodeOnly(f) {
					encode = "no"
				}
				texture := "-"
				if tf := info.Texture; tf != gputypes.TextureFormatUndefined {
					texture = tf.String()
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
					f, info.BytesPerPixel, info.Channels, info.Domain, info.BitsPerChannel,
					info.Alpha, info.Layout, texture, encode)
			}
			return tw.Flush()
		},
	}
	return cmd
}

// pathSymbols marks matrix cells by conversion path.
var pathSymbols = map[pixfmt.PathKind]string{
	pixfmt.PathUnsupported: ".",
	pixfmt.PathIdentity:    "=",
	pixfmt.PathDirect:      "D",
	pixfmt.PathHub:         "H",
	pixfmt.PathCrossHub:    "X",
}

// NewMatrixCmd prints the capability matrix.
func NewMatrixCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "show which format pairs convert",
		Long: "Prints one row per source format and one column per destination format.\n" +
			"Cells are '.' unsupported, '=' identity, 'D' direct formula, 'H' one hub, 'X' both hubs.\n" +
			"With --plain, supported cells are 'Y'.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plain, _ := cmd.Flags().GetBool("plain")
			formats := pixfmt.Formats()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
			header := make([]string, 0, len(formats)+1)
			header = append(header, "src\\dst")
			for i := range formats {
				header = append(header, fmt.Sprint(i))
			}
			fmt.Fprintln(tw, strings.Join(header, "\t"))

			m := pixfmt.SupportMatrix()
			for s, src := range formats {
				row := make([]string, 0, len(formats)+1)
				row = append(row, fmt.Sprintf("%d %s", s, src))
				for d, dst := range formats {
					switch {
					case plain && m[s][d]:
						row = append(row, "Y")
					case plain:
						row = append(row, ".")
					default:
						p, _ := pixfmt.Resolve(src, dst)
						row = append(row, pathSymbols[p.Kind])
					}
				}
				fmt.Fprintln(tw, strings.Join(row, "\t"))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Bool("plain", false, "only mark supported pairs")
	return cmd
}
