package paths

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsafeName is returned for ids that cannot be used as a single file name.
var ErrUnsafeName = errors.New("unsafe file name")

// CheckName reports whether name is usable as one path element below a layout directory.
// Remote ids end up in file names, so separators and dot entries are refused.
func CheckName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
	case strings.ContainsAny(name, `/\`+"\x00"):
	case strings.Contains(name, ".."):
	default:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsafeName, name)
}
