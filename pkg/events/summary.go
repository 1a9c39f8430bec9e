package events

import (
	"fmt"
	"strings"
)

type Summary struct {
	ErrorCount int

	Errors []Event

	Full []Event
}

func (s Summary) String() string {
	lines := make([]string, len(s.Errors))
	for i, err := range s.Errors {
		if err.Err != nil {
			lines[i] = fmt.Sprintf("- %s (%s)", err.Message, err.Err.Error())
		} else {
			lines[i] = fmt.Sprintf("- %s", err.Message)
		}
	}
	return strings.Join(lines, "\n")
}
