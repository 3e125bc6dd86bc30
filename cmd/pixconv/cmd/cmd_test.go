package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pixfmt"
	"github.com/gogpu/pixfmt/internal/image"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { pixfmt.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	root := NewRoot(context.Background(), "test-sha")
	root.SetArgs(args)
	root.SetIn(bytes.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "pixfmt "+pixfmt.Version+" (test-sha)\n", out)
}

func TestCommandTree(t *testing.T) {
	out, _, err := run(t, nil)
	require.NoError(t, err)
	for _, name := range []string{"formats", "matrix", "pixel", "convert", "version"} {
		assert.Contains(t, out, name)
	}
}

func TestFormats(t *testing.T) {
	out, _, err := run(t, nil, "formats")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+len(pixfmt.Formats()))
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))

	for _, line := range lines[1:] {
		// Layouts such as "L (LE uint16)" contain spaces, so only the
		// leading and trailing columns are split reliably.
		fields := strings.Fields(line)
		require.GreaterOrEqual(t, len(fields), 9, line)
		f, err := pixfmt.ParseFormat(fields[0])
		require.NoError(t, err)
		want := "yes"
		if pixfmt.IsDecodeOnly(f) {
			want = "no"
		}
		assert.Equal(t, want, fields[len(fields)-1], f.String())
		assert.Contains(t, line, f.Info().Layout)
	}
	assert.Contains(t, out, "BGRA8Unorm")
	assert.Contains(t, out, "B5:G6:R5 (LE uint16)")
}

func TestMatrix(t *testing.T) {
	out, _, err := run(t, nil, "matrix")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+len(pixfmt.Formats()))

	// Row for RGBA8: identity on the diagonal, direct to BGRA8, no Gray16.
	row := strings.Fields(lines[1+int(pixfmt.FormatRGBA8)])
	cells := row[2:]
	require.Len(t, cells, len(pixfmt.Formats()))
	assert.Equal(t, "=", cells[pixfmt.FormatRGBA8])
	assert.Equal(t, "D", cells[pixfmt.FormatBGRA8])
	assert.Equal(t, "H", cells[pixfmt.FormatARGB8])
	assert.Equal(t, "X", cells[pixfmt.FormatRGB16F])
	assert.Equal(t, ".", cells[pixfmt.FormatGray16])

	out, _, err = run(t, nil, "matrix", "--plain")
	require.NoError(t, err)
	assert.NotContains(t, out, " D ")
	assert.Contains(t, out, "Y")
}

func TestPixel(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"RGBA8", "RGBAPremul", "ff000080"}, "80000080\n"},
		{[]string{"rgbapremul", "rgba8", "0x80000080"}, "ff000080\n"},
		{[]string{"RGB8", "BGR565", "c86432"}, "26c3\n"},
		{[]string{"RGB8", "Gray8", "6496c8"}, "8d\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := run(t, nil, append([]string{"pixel"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPixel_Errors(t *testing.T) {
	_, _, err := run(t, nil, "pixel", "RGBA8", "Gray16", "00000000")
	assert.ErrorIs(t, err, pixfmt.ErrUnsupportedConversion)

	_, _, err = run(t, nil, "pixel", "CMYK", "RGBA8", "00000000")
	assert.ErrorIs(t, err, pixfmt.ErrInvalidFormat)

	_, _, err = run(t, nil, "pixel", "RGBA8", "RGB8", "zz")
	assert.Error(t, err)

	_, _, err = run(t, nil, "pixel", "RGBA8", "RGB8", "000000")
	assert.ErrorIs(t, err, pixfmt.ErrBufferSize)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		w, h int
		ok   bool
	}{
		{"640x480", 640, 480, true},
		{"10X2", 10, 2, true},
		{"0x5", 0, 5, true},
		{"0x0", 0, 0, false},
		{"-1x5", 0, 0, false},
		{"640", 0, 0, false},
		{"ax5", 0, 0, false},
	}

	for _, tt := range tests {
		w, h, err := parseSize(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.w, w)
		assert.Equal(t, tt.h, h)
	}
}

func TestConvert_RawToRaw(t *testing.T) {
	in := []byte{
		255, 0, 0, 128, 0, 255, 0, 255,
		0, 0, 255, 0, 10, 20, 30, 40,
	}
	out, stderr, err := run(t, in,
		"convert", "-", "--from", "RGBA8", "--size", "2x2", "--to", "BGRAPremul", "--out", "-", "--workers", "2")
	require.NoError(t, err)

	want := make([]byte, 16)
	require.NoError(t, pixfmt.ConvertBuffer(pixfmt.FormatRGBA8, pixfmt.FormatBGRAPremul, in, want, 4))
	assert.Equal(t, string(want), out)
	assert.Contains(t, stderr, "converted")
}

func TestConvert_DebugLogging(t *testing.T) {
	in := make([]byte, 12)
	_, stderr, err := run(t, in,
		"--log-level", "debug", "convert", "-", "--from", "RGB8", "--size", "4x1", "--to", "RGBA8", "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, stderr, "pixfmt: convert buffer")
	assert.Contains(t, stderr, "path=Direct")
}

func TestConvert_ImageRoundTrip(t *testing.T) {
	dir := t.TempDir()

	src, err := image.NewBitmap(4, 3, pixfmt.FormatRGBA8)
	require.NoError(t, err)
	for i := range src.Data() {
		src.Data()[i] = uint8(i * 13)
	}
	for i := 3; i < len(src.Data()); i += 4 {
		src.Data()[i] = 255
	}
	inPath := filepath.Join(dir, "in.png")
	require.NoError(t, src.Save(inPath))

	rawPath := filepath.Join(dir, "out.raw")
	_, _, err = run(t, nil, "convert", "--in", inPath, "--to", "RGBA32F", "--out", rawPath)
	require.NoError(t, err)

	raw, err := os.ReadFile(rawPath)
	require.NoError(t, err)
	require.Len(t, raw, 4*3*16)

	pngPath := filepath.Join(dir, "back.png")
	_, _, err = run(t, nil,
		"convert", rawPath, "--from", "RGBA32F", "--size", "4x3", "--out", pngPath)
	require.NoError(t, err)

	back, _, err := image.Load(pngPath)
	require.NoError(t, err)
	rgba, err := back.Convert(pixfmt.FormatRGBA8)
	require.NoError(t, err)
	assert.Equal(t, src.Data(), rgba.Data())
}

func TestConvert_Resize(t *testing.T) {
	in := make([]byte, 8*6)
	out, _, err := run(t, in,
		"convert", "-", "--from", "Gray8", "--size", "8x6", "--resize", "4x0", "--to", "Gray8", "--out", "-")
	require.NoError(t, err)
	assert.Len(t, out, 4*3)
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"no input", []string{"convert", "--out", "-"}, nil},
		{"no output", []string{"convert", "-"}, nil},
		{"raw without to", []string{"convert", "-", "--from", "RGB8", "--size", "1x1", "--out", "-"}, nil},
		{"raw without size", []string{"convert", "-", "--from", "RGB8", "--to", "RGBA8", "--out", "-"}, nil},
		{"bad format", []string{"convert", "-", "--from", "XYZ", "--size", "1x1", "--out", "-"}, pixfmt.ErrInvalidFormat},
		{"short input", []string{"convert", "-", "--from", "RGBA8", "--size", "2x2", "--to", "RGB8", "--out", "-"}, pixfmt.ErrBufferSize},
		{"decode-only target", []string{"convert", "-", "--from", "RGB8", "--size", "1x1", "--to", "Gray16", "--out", "-"}, pixfmt.ErrUnsupportedConversion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, []byte{1, 2, 3}, tt.args...)
			require.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}
