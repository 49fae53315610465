package parser

// headingLine is the classification of a line that matches a heading marker:
// a line that is exactly of the form \name{title} or \name*{title}, where
// name is one or more letters. The match is anchored to the full line with no
// whitespace trimming.
type headingLine struct {
	name    string
	starred bool
	title   string
}

// classifyLine classifies a single document line. It returns the heading
// variant and true when the line is a heading marker; otherwise the line is a
// body line and ok is false.
func classifyLine(line string) (headingLine, bool) {
	var h headingLine

	if len(line) < 4 || line[0] != '\\' {
		return h, false
	}

	i := 1
	for i < len(line) && isLetter(line[i]) {
		i++
	}
	if i == 1 {
		return h, false
	}
	name := line[1:i]

	starred := false
	if i < len(line) && line[i] == '*' {
		starred = true
		i++
	}

	if i >= len(line) || line[i] != '{' || line[len(line)-1] != '}' {
		return h, false
	}

	h.name = name
	h.starred = starred
	h.title = line[i+1 : len(line)-1]
	return h, true
}

// IsHeadingLine reports whether line is exactly a heading marker. It is used
// by the searcher to award the structural-header bonus during ranking.
func IsHeadingLine(line string) bool {
	_, ok := classifyLine(line)
	return ok
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
