package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tmpDir := t.TempDir()
	vocabularyPath := filepath.Join(tmpDir, "vocabulary.csv")
	require.NoError(t, os.WriteFile(vocabularyPath, []byte("english;french\nhouse;maison\n"), 0644))

	tests := []struct {
		name              string
		cfg               *Config
		wantErrorContains string
	}{
		{
			name: "readable vocabulary file",
			cfg: &Config{
				Vocabulary: VocabularyConfig{File: vocabularyPath},
			},
		},
		{
			name: "missing vocabulary file",
			cfg: &Config{
				Vocabulary: VocabularyConfig{File: filepath.Join(tmpDir, "missing.csv")},
			},
			wantErrorContains: "vocabulary.file must be an existing and readable file",
		},
		{
			name: "directory instead of a file",
			cfg: &Config{
				Vocabulary: VocabularyConfig{File: tmpDir},
			},
			wantErrorContains: "vocabulary.file must be an existing and readable file",
		},
		{
			name:              "empty vocabulary file path",
			cfg:               &Config{},
			wantErrorContains: "vocabulary.file is a required field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErrorContains != "" {
				assert.ErrorContains(t, err, tt.wantErrorContains)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIsFileReadable(t *testing.T) {
	tmpDir := t.TempDir()
	readablePath := filepath.Join(tmpDir, "readable.csv")
	require.NoError(t, os.WriteFile(readablePath, []byte("english;french\n"), 0644))

	validate, _, err := newValidator()
	require.NoError(t, err)

	type target struct {
		Path string `validate:"file"`
	}

	assert.NoError(t, validate.Struct(target{Path: readablePath}))
	assert.Error(t, validate.Struct(target{Path: filepath.Join(tmpDir, "missing.csv")}))
	assert.Error(t, validate.Struct(target{Path: tmpDir}))
}
