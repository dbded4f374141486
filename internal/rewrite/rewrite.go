// Package rewrite implements the alert-to-toast source transform: a pure
// import-insertion pass, a pure line-oriented call-site replacement pass, and
// a filesystem runner that applies both to a configured list of files.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

// Matching is line-oriented by design: a call split across lines is left
// untouched, as is anything the argument pattern cannot make sense of.
var (
	importLineRe = regexp.MustCompile(`(?m)^import\s+.*;$`)
	alertArgRe   = regexp.MustCompile(`alert\((.*?)\);?`)
)

// toastImportSpellings are the accepted spellings of an existing toast
// import. If either appears anywhere in the file, no import is inserted.
var toastImportSpellings = []string{"import { toast }", "import toast"}

// EnsureImport returns content with a toast import line inserted after the
// last top-level import statement. Content is returned unchanged when a
// toast import is already present in either accepted spelling, or when the
// file has no import statements at all (nothing is synthesized).
func EnsureImport(content, importPath string) string {
	for _, spelling := range toastImportSpellings {
		if strings.Contains(content, spelling) {
			return content
		}
	}

	matches := importLineRe.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	insertPos := matches[len(matches)-1][1]
	importLine := fmt.Sprintf("\nimport { toast } from '%s';", importPath)

	return content[:insertPos] + importLine + content[insertPos:]
}

// ReplaceCalls rewrites every single-line alert() call in content to the
// toast call matching the line's severity. Lines prefixed with a `// alert(`
// comment marker are left alone, as are lines where the argument cannot be
// extracted (unbalanced parens, calls spanning lines). Output lines are
// joined with a single newline.
func ReplaceCalls(content string) string {
	lines := strings.Split(content, "\n")
	newLines := make([]string, 0, len(lines))

	for _, line := range lines {
		newLines = append(newLines, replaceLine(line))
	}

	return strings.Join(newLines, "\n")
}

func replaceLine(line string) string {
	if !strings.Contains(line, "alert(") || strings.Contains(line, "// alert(") {
		return line
	}

	match := alertArgRe.FindStringSubmatch(line)
	if match == nil {
		return line
	}

	arg := match[1]
	severity := Classify(line)

	oldCall := "alert(" + arg + ")"
	newCall := "toast." + string(severity) + "(" + arg + ")"

	return strings.ReplaceAll(line, oldCall, newCall)
}
