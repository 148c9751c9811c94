// Package lang maps file paths to language identifiers used for syntax
// highlighting and the status bar.
package lang

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// byExtension covers the common cases directly; anything not listed here
// falls through to the chroma lexer registry.
var byExtension = map[string]string{
	".go":    "go",
	".mod":   "go.mod",
	".py":    "python",
	".rb":    "ruby",
	".rs":    "rust",
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".cc":    "cpp",
	".hpp":   "cpp",
	".java":  "java",
	".js":    "javascript",
	".mjs":   "javascript",
	".jsx":   "jsx",
	".ts":    "typescript",
	".tsx":   "tsx",
	".lua":   "lua",
	".sh":    "bash",
	".bash":  "bash",
	".zsh":   "bash",
	".fish":  "fish",
	".md":    "markdown",
	".json":  "json",
	".yaml":  "yaml",
	".yml":   "yaml",
	".toml":  "toml",
	".xml":   "xml",
	".html":  "html",
	".htm":   "html",
	".css":   "css",
	".scss":  "scss",
	".sql":   "sql",
	".proto": "protobuf",
	".zig":   "zig",
	".txt":   "",
}

// byFilename handles well-known extensionless files.
var byFilename = map[string]string{
	"makefile":    "makefile",
	"gnumakefile": "makefile",
	"dockerfile":  "docker",
	"go.mod":      "go.mod",
	"go.sum":      "",
	".bashrc":     "bash",
	".zshrc":      "bash",
	".gitignore":  "",
}

// Detect returns the language identifier for a path, or "" when the file is
// plain text or unrecognized. Detection is a pure function of the path
// string; content is never inspected.
func Detect(path string) string {
	base := strings.ToLower(filepath.Base(path))
	if id, ok := byFilename[base]; ok {
		return id
	}

	ext := strings.ToLower(filepath.Ext(base))
	if id, ok := byExtension[ext]; ok {
		return id
	}

	// Fall back to chroma's registry, which knows far more filename
	// patterns than the tables above.
	if lexer := lexers.Match(base); lexer != nil {
		return strings.ToLower(lexer.Config().Name)
	}
	return ""
}
