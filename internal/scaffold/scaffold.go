package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bashhack/dailylog/internal/constants"
	dailyErrors "github.com/bashhack/dailylog/internal/errors"
)

// File names written by Init
const (
	ReadmeFile    = "README.md"
	GitignoreFile = ".gitignore"
)

// Init writes README.md and .gitignore into root when they are absent and
// returns the names of the files it created. Existing files are left untouched.
func Init(root string, now time.Time) ([]string, error) {
	files := []struct {
		name    string
		content string
	}{
		{ReadmeFile, fmt.Sprintf(constants.ReadmeTemplate, now.Format("2006-01-02 15:04:05"))},
		{GitignoreFile, constants.GitignoreTemplate},
	}

	var created []string
	for _, file := range files {
		ok, err := writeIfAbsent(filepath.Join(root, file.name), file.content)
		if err != nil {
			return created, err
		}
		if ok {
			created = append(created, file.name)
		}
	}
	return created, nil
}

func writeIfAbsent(path, content string) (bool, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, dailyErrors.Wrap(dailyErrors.ErrLogFileFailure, err.Error(), dailyErrors.KeyPath, path)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return false, dailyErrors.Wrap(dailyErrors.ErrLogFileFailure, err.Error(), dailyErrors.KeyPath, path)
	}
	if err := f.Close(); err != nil {
		return false, dailyErrors.Wrap(dailyErrors.ErrLogFileFailure, err.Error(), dailyErrors.KeyPath, path)
	}
	return true, nil
}
