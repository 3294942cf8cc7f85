package config

import (
	"strings"
)

// StarterContent returns the annotated starter configuration with every
// assignment commented out, ready to be written as a user's first config
// file.
func StarterContent() string {
	return commentOutConfigValues(string(starterConfig))
}

// commentOutConfigValues comments out every assignment line in a TOML
// document. Blank lines, existing comments, and section headers pass
// through unchanged.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
