// Package testutil provides shared test helpers for creating config and vocabulary files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteVocabularyCSV writes a semicolon-delimited vocabulary file with a
// header row and returns its path.
func WriteVocabularyCSV(t *testing.T, dir, name string, rows [][2]string) string {
	t.Helper()

	var builder strings.Builder
	builder.WriteString("english;french\n")
	for _, row := range rows {
		fmt.Fprintf(&builder, "%s;%s\n", row[0], row[1])
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(builder.String()), 0644))
	return path
}

// SetupTestConfig creates a config file pointing at a small vocabulary file
// under tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	vocabularyPath := WriteVocabularyCSV(t, tmpDir, "vocabulary.csv", [][2]string{
		{"house", "maison"},
		{"cat", "chat"},
		{"dog", "chien"},
	})

	configContent := fmt.Sprintf(`vocabulary:
  file: %s
quiz:
  case_sensitive: false
  accent_sensitive: true
`, vocabularyPath)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
