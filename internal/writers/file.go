package writers

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// GzipExt is appended to file names when compression is on.
const GzipExt = ".gz"

// Name returns the file name Create will use for path.
func Name(path string, gz bool) string {
	if gz {
		return path + GzipExt
	}
	return path
}

// Create opens Name(path, gz) for writing. Close flushes the buffer and
// the gzip stream before closing the file, returning the first error.
func Create(path string, gz bool) (io.WriteCloser, error) {
	f, err := os.Create(Name(path, gz))
	if err != nil {
		return nil, err
	}
	fw := &fileWriter{f: f}
	if gz {
		fw.gz = gzip.NewWriter(f)
		fw.bw = bufio.NewWriterSize(fw.gz, 64<<10)
	} else {
		fw.bw = bufio.NewWriterSize(f, 64<<10)
	}
	return fw, nil
}

type fileWriter struct {
	f  *os.File
	gz *gzip.Writer
	bw *bufio.Writer
}

func (w *fileWriter) Write(p []byte) (int, error) { return w.bw.Write(p) }

func (w *fileWriter) Close() error {
	var errs []error
	errs = append(errs, w.bw.Flush())
	if w.gz != nil {
		errs = append(errs, w.gz.Close())
	}
	errs = append(errs, w.f.Close())
	return errors.Join(errs...)
}
