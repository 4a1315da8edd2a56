package mcp

import (
	"fmt"
	"regexp"
)

// toolNameRegex validates the "service.tool" format. Both parts must start
// with a word character and contain only word characters and hyphens.
var toolNameRegex = regexp.MustCompile(`^([\w][\w-]*)\.([\w][\w-]*)$`)

// SplitToolName splits "service.tool" into (service, toolName, error).
func SplitToolName(name string) (service, toolName string, err error) {
	matches := toolNameRegex.FindStringSubmatch(name)
	if matches == nil {
		return "", "", fmt.Errorf(
			"invalid tool name %q: must be in 'service.tool' format "+
				"(e.g., 'invoice.list_invoices')", name)
	}
	return matches[1], matches[2], nil
}
