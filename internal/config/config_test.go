package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "https://api.openai.com/v1", cfg.ChatAPIBaseURL)
	assert.Equal(t, DefaultSystemPrompt, cfg.SystemPrompt)
	assert.Equal(t, "quill_session", cfg.SessionCookieName)
	assert.Equal(t, cfg, GetGlobal())
}

func TestLoadTrimsBaseURL(t *testing.T) {
	t.Setenv("CHAT_API_BASE_URL", "http://localhost:8001/v1/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8001/v1", cfg.ChatAPIBaseURL)
}

func TestLoadRejectsInvalidBaseURL(t *testing.T) {
	t.Setenv("CHAT_API_BASE_URL", "not a url")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadAppliesProfileOverrides(t *testing.T) {
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "profile.yml")
	profile := "title: Support\ngreeting: Hi there\nsystem_prompt: Answer tersely.\nmodel: gpt-4o\n"
	require.NoError(t, os.WriteFile(profilePath, []byte(profile), 0o600))

	t.Setenv("QUILL_PROFILE_FILE", profilePath)
	t.Setenv("CHAT_MODEL", "gpt-4o-mini")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Answer tersely.", cfg.SystemPrompt)
	assert.Equal(t, "gpt-4o", cfg.ChatModel)
	require.NotNil(t, cfg.Profile)
	assert.Equal(t, "Support", cfg.Profile.Title)
	assert.Equal(t, "Hi there", cfg.Profile.Greeting)
}

func TestLoadProfileMissingFile(t *testing.T) {
	t.Setenv("QUILL_PROFILE_FILE", filepath.Join(t.TempDir(), "absent.yml"))

	_, err := Load()
	require.Error(t, err)
}
