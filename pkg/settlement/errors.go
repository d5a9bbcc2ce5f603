package settlement

import "strings"

// MismatchError lists every field or balance that differed from what was
// expected.
type MismatchError struct {
	Subject  string
	Problems []string
}

func (errorValue *MismatchError) Error() string {
	var builder strings.Builder
	builder.WriteString(errorValue.Subject)
	builder.WriteString(":")
	for _, problem := range errorValue.Problems {
		builder.WriteString("\n  ")
		builder.WriteString(problem)
	}
	return builder.String()
}

func newMismatch(subject string, problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return &MismatchError{Subject: subject, Problems: problems}
}
