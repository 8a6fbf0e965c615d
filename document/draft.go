package document

import (
	"io/fs"
	"os"

	"github.com/pkg/errors"
)

// LoadDraft returns the draft stored at path. A missing draft is "".
func LoadDraft(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "read draft %s", path)
	}
	return Normalize(string(data)), nil
}

// SaveDraft replaces the draft at path. The text goes to a sibling temp
// file first and is renamed into place.
func SaveDraft(path, text string) error {
	tmp := path + ".tmp"
	if err := writeFile(tmp, []byte(text)); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "replace draft %s", path)
	}
	return nil
}
