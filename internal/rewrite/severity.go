package rewrite

import "strings"

// Severity is the toast variant chosen for a rewritten call site.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// successKeywords mark a line as reporting a successful operation.
var successKeywords = []string{
	"success", "updated", "saved", "created", "posted",
	"submitted", "copied", "closed", "depreciated",
}

// errorKeywords take precedence over success keywords when both appear.
var errorKeywords = []string{"fail", "error", "warning"}

// Classify picks a severity for one source line. The whole line is scanned
// case-insensitively, so a keyword anywhere on the line counts, even outside
// the alert argument. Error keywords override success keywords; lines with
// neither default to info.
func Classify(line string) Severity {
	lower := strings.ToLower(line)

	isSuccess := containsAny(lower, successKeywords)
	isError := containsAny(lower, errorKeywords)

	switch {
	case isSuccess && !isError:
		return SeveritySuccess
	case isError:
		return SeverityError
	default:
		return SeverityInfo
	}
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
