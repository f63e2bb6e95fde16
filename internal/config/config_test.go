package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigXML = `<?xml version="1.0" encoding="UTF-8"?>
<API REQUEST_DUMP="true">
    <CONTEXT>
        <PORT>8080</PORT>
        <HOST>127.0.0.1</HOST>
        <LOG_DIR>logs</LOG_DIR>
    </CONTEXT>
    <INTERVIEW>
        <SESSION_MAX_AGE_MINUTES>90</SESSION_MAX_AGE_MINUTES>
        <TRANSCRIPT_DIR>working/transcripts</TRANSCRIPT_DIR>
    </INTERVIEW>
    <LLM>
        <URL>http://localhost:11434/api/generate</URL>
        <MODEL>mistral</MODEL>
        <TIMEOUT_SECONDS>30</TIMEOUT_SECONDS>
    </LLM>
    <RATE_LIMIT ENABLED="true">
        <REQUESTS_PER_SECOND>10</REQUESTS_PER_SECOND>
        <BURST>20</BURST>
    </RATE_LIMIT>
    <DB>
        <INITIALIZE>false</INITIALIZE>
        <HOST>localhost</HOST>
        <PORT>5432</PORT>
        <SSL_MODE>disable</SSL_MODE>
        <NAME>civicsprep</NAME>
        <USERNAME>civicsprep</USERNAME>
        <PASSWORD TYPE="plain">secret</PASSWORD>
    </DB>
</API>`

// LoadConfig parses once per process, so parsing and env overlay are
// exercised in a single sequential test.
func TestLoadConfigWithEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("OLLAMA_MODEL", "llama3")
	t.Setenv("DB_PASSWORD", "from-env")

	path := filepath.Join(t.TempDir(), "config.xml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigXML), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.RequestDump)
	assert.Equal(t, "127.0.0.1", cfg.Context.Host)
	assert.Equal(t, 90, cfg.Interview.SessionMaxAgeMinutes)
	assert.Equal(t, "working/transcripts", cfg.Interview.TranscriptDir)
	assert.Equal(t, "http://localhost:11434/api/generate", cfg.LLM.URL)
	assert.Equal(t, 30, cfg.LLM.TimeoutSeconds)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.InDelta(t, 10.0, cfg.RateLimit.RequestsPerSecond, 0.001)
	assert.False(t, cfg.DB.Initialize)
	assert.Equal(t, "plain", cfg.DB.Password.Type)

	// Environment wins over XML.
	assert.Equal(t, 9999, cfg.Context.Port)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.Equal(t, "from-env", cfg.DB.Password.Value)

	assert.Same(t, cfg, GetConfig())
}
