package instance

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/sepline/core"
)

// StdinPath makes Load read standard input.
const StdinPath = "-"

// Instance is one loaded input file.
type Instance struct {
	Path   string
	Name   string // base name of Path
	Number int    // digits of Name as an integer; 0 when there are none
	Points []core.Point
}

// Load opens path (StdinPath for standard input, a ".gz" suffix for gzip)
// and reads it with Read.
func Load(path string, capacity int) (*Instance, error) {
	rc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	pts, err := Read(rc, capacity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	name := filepath.Base(path)
	if path == StdinPath {
		name = "stdin"
	}

	return &Instance{Path: path, Name: name, Number: Number(name), Points: pts}, nil
}

func open(path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return fh, nil
	}
	gr, err := gzip.NewReader(fh)
	if err != nil {
		fh.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return struct {
		io.Reader
		io.Closer
	}{Reader: gr, Closer: fh}, nil
}

// maxPrealloc caps the slice reserved from the declared count; larger
// instances grow as pairs arrive.
const maxPrealloc = 1 << 12

// Read parses an instance from r. capacity <= 0 means unbounded.
func Read(r io.Reader, capacity int) ([]core.Point, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty input: %w", ErrNoPoints)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return nil, fmt.Errorf("count %q: %w", sc.Text(), ErrNoPoints)
	}
	if capacity > 0 && n > capacity {
		return nil, fmt.Errorf("count %d > capacity %d: %w", n, capacity, core.ErrCapacityExceeded)
	}

	var (
		pts    = make([]core.Point, 0, min(n, maxPrealloc))
		coords [2]int
		k      int
	)
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("token %q after %d points: %w", sc.Text(), len(pts), ErrPointCountMismatch)
		}
		coords[k] = v
		if k++; k < 2 {
			continue
		}
		k = 0
		if len(pts) == n {
			return nil, fmt.Errorf("more than %d points: %w", n, ErrPointCountMismatch)
		}
		pts = append(pts, core.Point{ID: len(pts), X: coords[0], Y: coords[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if k != 0 {
		return nil, fmt.Errorf("dangling coordinate after %d points: %w", len(pts), ErrPointCountMismatch)
	}
	if len(pts) != n {
		return nil, fmt.Errorf("read %d points, want %d: %w", len(pts), n, ErrPointCountMismatch)
	}

	return pts, nil
}
