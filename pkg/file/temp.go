package file

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tempNameBytes is the entropy per generated name. 160 bits makes
// collisions implausible without an existence check.
const tempNameBytes = 20

// base32 without padding: "=" is awkward in filenames and shells.
var tempNameEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// TempPath names a new file inside the system temporary directory. The
// base name is 20 cryptographically random bytes, base32-encoded, with
// extHint appended (with or without its leading dot). It only names the
// file; nothing is created on disk.
func TempPath(extHint string) (string, error) {
	buf := make([]byte, tempNameBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	name := strings.ToLower(tempNameEncoding.EncodeToString(buf))
	if extHint != "" && !strings.HasPrefix(extHint, ".") {
		extHint = "." + extHint
	}

	return filepath.Join(os.TempDir(), name+extHint), nil
}
