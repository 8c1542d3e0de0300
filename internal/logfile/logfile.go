package logfile

import (
	"bytes"
	"os"
	"path/filepath"

	dailyErrors "github.com/bashhack/dailylog/internal/errors"
)

// AlreadyLogged reports whether the file at path exists and contains key
// anywhere in its text. A missing file is not an error.
//
// The check is a plain substring match, so the key appearing inside
// unrelated text also counts as logged.
func AlreadyLogged(path, key string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, dailyErrors.Wrap(dailyErrors.ErrLogFileFailure, err.Error(),
			dailyErrors.KeyPath, path, dailyErrors.KeyDailyKey, key)
	}
	return bytes.Contains(content, []byte(key)), nil
}

// Append writes text followed by a newline to the end of the file at path.
//
// Parent directories are created as needed and a missing file is created
// holding header. When the existing content is non-empty and does not end
// with a newline, one is written first, so exactly one newline separates
// the prior content from text.
func Append(path, text, header string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return dailyErrors.Wrap(dailyErrors.ErrLogFileFailure, "failed to create log directory: "+err.Error(),
			dailyErrors.KeyPath, path)
	}

	if err := ensureFile(path, header); err != nil {
		return err
	}

	last, err := lastByte(path)
	if err != nil {
		return err
	}

	var prefix string
	if last != 0 && last != '\n' {
		prefix = "\n"
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return dailyErrors.Wrap(dailyErrors.ErrLogFileFailure, err.Error(), dailyErrors.KeyPath, path)
	}

	if _, err := f.WriteString(prefix + text + "\n"); err != nil {
		_ = f.Close()
		return dailyErrors.Wrap(dailyErrors.ErrLogFileFailure, err.Error(), dailyErrors.KeyPath, path)
	}
	if err := f.Close(); err != nil {
		return dailyErrors.Wrap(dailyErrors.ErrLogFileFailure, err.Error(), dailyErrors.KeyPath, path)
	}
	return nil
}

// ensureFile creates path with header unless it already exists.
func ensureFile(path, header string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return dailyErrors.Wrap(dailyErrors.ErrLogFileFailure, "failed to create log file: "+err.Error(),
			dailyErrors.KeyPath, path)
	}

	if _, err := f.WriteString(header); err != nil {
		_ = f.Close()
		return dailyErrors.Wrap(dailyErrors.ErrLogFileFailure, err.Error(), dailyErrors.KeyPath, path)
	}
	if err := f.Close(); err != nil {
		return dailyErrors.Wrap(dailyErrors.ErrLogFileFailure, err.Error(), dailyErrors.KeyPath, path)
	}
	return nil
}

// lastByte returns the final byte of the file, or 0 when it is empty.
func lastByte(path string) (byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, dailyErrors.Wrap(dailyErrors.ErrLogFileFailure, err.Error(), dailyErrors.KeyPath, path)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return 0, dailyErrors.Wrap(dailyErrors.ErrLogFileFailure, err.Error(), dailyErrors.KeyPath, path)
	}
	if info.Size() == 0 {
		return 0, nil
	}

	buf := make([]byte, 1)
	if _, err := f.ReadAt(buf, info.Size()-1); err != nil {
		return 0, dailyErrors.Wrap(dailyErrors.ErrLogFileFailure, err.Error(), dailyErrors.KeyPath, path)
	}
	return buf[0], nil
}
