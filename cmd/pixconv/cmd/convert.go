package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixfmt"
	"github.com/gogpu/pixfmt/internal/image"
	"github.com/gogpu/pixfmt/internal/parallel"
)

// imageExts are output extensions written as encoded images rather than raw
// pixel buffers.
var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".bmp": true, ".tif": true, ".tiff": true,
}

// NewConvertCmd converts an image file or raw pixel buffer.
func NewConvertCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [INPUT]",
		Short: "convert an image or raw pixel buffer",
		Long: "Reads an image file (png, jpeg, gif, bmp, tiff, webp) or, with --from and --size,\n" +
			"a raw pixel buffer, optionally resizes it, and writes it in --to format.\n" +
			"Outputs ending in .png, .jpg, .bmp or .tiff are encoded images; anything else\n" +
			"receives the raw converted bytes. Use - for stdin or stdout.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			if in == "" && len(args) > 0 {
				in = args[0]
			}
			if in == "" {
				return fmt.Errorf("input is required. Use --in flag or provide as argument")
			}
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				return fmt.Errorf("--out is required")
			}

			opts := convertOptions{in: in, out: out}
			var err error
			if opts.from, err = formatFlag(cmd, "from"); err != nil {
				return err
			}
			if opts.to, err = formatFlag(cmd, "to"); err != nil {
				return err
			}
			if s, _ := cmd.Flags().GetString("size"); s != "" {
				if opts.width, opts.height, err = parseSize(s); err != nil {
					return fmt.Errorf("--size: %w", err)
				}
			}
			if s, _ := cmd.Flags().GetString("resize"); s != "" {
				if opts.resizeW, opts.resizeH, err = parseSize(s); err != nil {
					return fmt.Errorf("--resize: %w", err)
				}
			}
			opts.workers, _ = cmd.Flags().GetInt("workers")

			return runConvert(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "input file, - for stdin")
	pf.StringP("out", "o", "", "output file, - for stdout")
	pf.String("from", "", "raw input pixel format (input is an image file when empty)")
	pf.String("size", "", "raw input dimensions WxH")
	pf.String("to", "", "output pixel format")
	pf.String("resize", "", "resize to WxH (0 for one side keeps the aspect ratio)")
	return cmd
}

type convertOptions struct {
	in, out          string
	from, to         pixfmt.Format
	width, height    int
	resizeW, resizeH int
	workers          int
}

func formatFlag(cmd *cobra.Command, name string) (pixfmt.Format, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return noFormat, nil
	}
	f, err := pixfmt.ParseFormat(s)
	if err != nil {
		return noFormat, fmt.Errorf("--%s: %w", name, err)
	}
	return f, nil
}

// noFormat marks an unset format flag.
const noFormat = pixfmt.Format(255)

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("width: %w", err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("height: %w", err)
	}
	if w < 0 || h < 0 || (w == 0 && h == 0) {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	return w, h, nil
}

func runConvert(ctx context.Context, stdin io.Reader, stdout io.Writer, opts convertOptions) error {
	start := time.Now()

	bmp, err := readInput(stdin, opts)
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "input", "format", bmp.Format(), "width", bmp.Width(), "height", bmp.Height())

	if opts.resizeW != 0 || opts.resizeH != 0 {
		if bmp, err = bmp.Resize(opts.resizeW, opts.resizeH); err != nil {
			return fmt.Errorf("resize: %w", err)
		}
	}

	to := opts.to
	encoded := imageExts[strings.ToLower(filepath.Ext(opts.out))]
	if to == noFormat {
		if !encoded {
			return fmt.Errorf("--to is required for raw output")
		}
		to = bmp.Format()
	}

	pool := parallel.NewPool(opts.workers)
	defer pool.Close()
	if bmp, err = bmp.ConvertParallel(pool, to); err != nil {
		return err
	}

	w, closeOut, err := openOutput(stdout, opts.out)
	if err != nil {
		return err
	}
	if encoded {
		err = bmp.Encode(w, filepath.Ext(opts.out))
	} else {
		_, err = w.Write(bmp.Data())
	}
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}

	slog.InfoContext(ctx, "converted",
		"out", opts.out, "format", to,
		"width", bmp.Width(), "height", bmp.Height(),
		"workers", pool.Workers(), "elapsed", time.Since(start))
	return nil
}

func readInput(stdin io.Reader, opts convertOptions) (*image.Bitmap, error) {
	var r io.Reader = stdin
	if opts.in != "-" {
		f, err := os.Open(filepath.Clean(opts.in))
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()
		r = f
	}

	if opts.from == noFormat {
		if opts.width != 0 || opts.height != 0 {
			return nil, fmt.Errorf("--size needs --from")
		}
		bmp, _, err := image.Decode(r)
		return bmp, err
	}

	if opts.width <= 0 || opts.height <= 0 {
		return nil, fmt.Errorf("raw input needs --size WxH")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	rowBytes := opts.from.RowBytes(opts.width)
	if want := rowBytes * opts.height; len(data) != want {
		return nil, fmt.Errorf("%w: input is %d bytes, %s %dx%d needs %d",
			pixfmt.ErrBufferSize, len(data), opts.from, opts.width, opts.height, want)
	}
	return image.FromRaw(data, opts.width, opts.height, opts.from, rowBytes)
}

func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file: %w", err)
	}
	return f, f.Close, nil
}
