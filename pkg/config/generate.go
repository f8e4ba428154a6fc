package config

import (
	"bytes"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/scrpatch/pkg/errors"
)

const generatedHeader = `# scrpatch settings
#
# Run "scrpatch build" in this directory to generate scripts from these
# values. Percent conventions are described by "scrpatch help conventions".

`

// Generate renders p as a settings file.
func Generate(p Params) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(p); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode settings")
	}
	return buf.Bytes(), nil
}

// GenerateCommented returns the defaults file with every value commented
// out, so only the keys a user uncomments override the defaults.
func GenerateCommented() string {
	return commentOutConfigValues(DefaultsContent())
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [xp], [flashlight.uv1]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
