package workspace

import (
	"bytes"
	"os"
	"unicode/utf8"
)

// SizeClass classifies a file against the editor's size policy.
type SizeClass int

const (
	SizeOK SizeClass = iota
	SizeWarn
	SizeTooLarge
)

const (
	// warnSize is the point where opening still works but the status bar
	// warns about sluggish editing.
	warnSize = 1 << 20 // 1 MiB

	// maxSize is the hard ceiling; larger files are refused before any
	// session is created.
	maxSize = 10 << 20 // 10 MiB

	// sniffLen is how much of a file the text check inspects.
	sniffLen = 8000
)

// CheckSize classifies a file size against the open policy.
func CheckSize(size int64) SizeClass {
	switch {
	case size > maxSize:
		return SizeTooLarge
	case size > warnSize:
		return SizeWarn
	default:
		return SizeOK
	}
}

// IsTextFile reports whether the file looks like editable text. A NUL byte
// or a mostly-invalid UTF-8 prefix marks it as binary. Missing files count
// as text so the caller's read reports the real error.
func IsTextFile(absPath string) bool {
	f, err := os.Open(absPath)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, _ := f.Read(buf)
	return looksLikeText(buf[:n])
}

// IsTextFile applies the text check to a workspace-relative path.
func (w *Workspace) IsTextFile(relPath string) bool {
	return IsTextFile(w.Abs(relPath))
}

// CheckSize classifies a workspace-relative file against the open policy.
func (w *Workspace) CheckSize(relPath string) SizeClass {
	info, err := os.Stat(w.Abs(relPath))
	if err != nil {
		return SizeOK
	}
	return CheckSize(info.Size())
}

func looksLikeText(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return false
	}

	// Tolerate a truncated rune at the end of the sample, but reject data
	// that is substantially invalid UTF-8.
	invalid := 0
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			invalid++
		}
		i += size
	}
	return invalid*10 < len(data)
}
