package system

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrTooLarge is returned by ReadBounded when the file holds at least as many
// bytes as the read limit.
var ErrTooLarge = errors.New("pseudo-file exceeds read limit")

// ReadBounded reads a small pseudo-file such as a sysfs attribute. It reads at
// most limit bytes and succeeds only when end-of-file is reached before limit
// bytes have been read, so a value that fills the buffer is rejected rather
// than silently truncated.
func ReadBounded(path string, limit int) ([]byte, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("read %s: invalid limit %d", path, limit)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, limit)
	n, err := io.ReadFull(f, buf)
	switch {
	case err == nil:
		return nil, fmt.Errorf("read %s: %w", path, ErrTooLarge)
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return buf[:n], nil
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
}
