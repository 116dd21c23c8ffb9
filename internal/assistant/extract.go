package assistant

import (
	"regexp"
	"strings"
)

var numberedLine = regexp.MustCompile(`^\d+\.\s+(.+)$`)

// ExtractSubtasks pulls numbered lines ("1. Buy milk") out of a model
// response, in order. Unnumbered text yields nothing.
func ExtractSubtasks(response string) []string {
	subtasks := []string{}
	for _, line := range strings.Split(response, "\n") {
		if match := numberedLine.FindStringSubmatch(line); match != nil {
			subtasks = append(subtasks, match[1])
		}
	}
	return subtasks
}
