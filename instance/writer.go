package instance

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/renameio/v2"

	"github.com/katalvlaran/sepline/core"
	"github.com/katalvlaran/sepline/lines"
)

const (
	// DefaultPrefix is the output name prefix.
	DefaultPrefix = "greedy_solution"
	// DefaultPrecision is the number of decimals written per coordinate.
	DefaultPrecision = 1
)

// Tag returns the output tag of an axis: "v" for X, "h" for Y.
func Tag(a core.Axis) string {
	if a == core.Y {
		return "h"
	}

	return "v"
}

// Number parses the digits of name, in order, as a decimal integer. Names
// without digits, or with more digits than an int holds, give 0.
func Number(name string) int {
	var b strings.Builder
	for _, r := range name {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}

	return n
}

// OutputName returns prefix + Number(base of inputPath) padded to two digits.
func OutputName(prefix, inputPath string) string {
	return fmt.Sprintf("%s%.2d", prefix, Number(filepath.Base(inputPath)))
}

// Write emits the line count, then "v c" or "h c" per line with c printed to
// precision decimals. A negative precision selects DefaultPrecision.
func Write(w io.Writer, ls []lines.Line, precision int) error {
	if precision < 0 {
		precision = DefaultPrecision
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(ls))
	for _, l := range ls {
		fmt.Fprintf(bw, "%s %.*f\n", Tag(l.Axis), precision, l.Coord)
	}

	return bw.Flush()
}

// WritePoints emits points in the input format Read accepts.
func WritePoints(w io.Writer, points []core.Point) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(points))
	for _, p := range points {
		fmt.Fprintf(bw, "%d %d\n", p.X, p.Y)
	}

	return bw.Flush()
}

// FileMode is the permission of written solution files.
const FileMode os.FileMode = 0o644

// WriteFile writes ls to dir/name atomically with FileMode permissions, so a
// failed write never leaves a partial file. It returns the final path.
func WriteFile(dir, name string, ls []lines.Line, precision int) (string, error) {
	if dir == "" {
		dir = "."
	}
	var buf bytes.Buffer
	if err := Write(&buf, ls, precision); err != nil {
		return "", err
	}
	final := filepath.Join(dir, name)
	if err := renameio.WriteFile(final, buf.Bytes(), FileMode, renameio.IgnoreUmask()); err != nil {
		return "", err
	}

	return final, nil
}
