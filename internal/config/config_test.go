package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	Reset()
	defer Reset()

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8390, cfg.Server.Port)
	assert.Nil(t, cfg.Agent, "agent must stay unset without an agent section")
}

func TestLoad_FromFile(t *testing.T) {
	Reset()
	defer Reset()

	path := writeConfig(t, `
log:
  level: debug
  format: json
server:
  port: 9000
agent:
  instruction: You are a math tutor.
  prompt:
    first_prompt: "{{instruction}}\n{{tools}}\n{{query}}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 9000, cfg.Server.Port)
	require.NotNil(t, cfg.Agent)
	assert.Equal(t, "You are a math tutor.", cfg.Agent.Instruction)
	require.NotNil(t, cfg.Agent.Prompt)
	assert.Equal(t, "{{instruction}}\n{{tools}}\n{{query}}", cfg.Agent.Prompt.FirstPrompt)
	assert.Equal(t, path, Path())
	assert.Same(t, cfg, GetConfig())
}

func TestLoad_AgentWithoutPrompt(t *testing.T) {
	Reset()
	defer Reset()

	path := writeConfig(t, `
agent:
  instruction: no template here
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Agent)
	assert.Nil(t, cfg.Agent.Prompt)
}

func TestLoad_MissingFile(t *testing.T) {
	Reset()
	defer Reset()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	Reset()
	defer Reset()

	path := writeConfig(t, "log: [unterminated")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	Reset()
	defer Reset()

	t.Setenv("COTPROMPT_LOG_LEVEL", "warn")
	t.Setenv("COTPROMPT_SERVER_PORT", "7001")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 7001, cfg.Server.Port)
}

func TestLoad_AgentFromEnv(t *testing.T) {
	Reset()
	defer Reset()

	t.Setenv("COTPROMPT_AGENT_INSTRUCTION", "be brief")
	t.Setenv("COTPROMPT_AGENT_PROMPT_FIRST_PROMPT", "{{instruction}}\n{{query}}")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg.Agent)
	assert.Equal(t, "be brief", cfg.Agent.Instruction)
	require.NotNil(t, cfg.Agent.Prompt)
	assert.Equal(t, "{{instruction}}\n{{query}}", cfg.Agent.Prompt.FirstPrompt)
}

func TestLoad_AgentEnvOverridesFile(t *testing.T) {
	Reset()
	defer Reset()

	path := writeConfig(t, `
agent:
  instruction: from file
  prompt:
    first_prompt: "{{query}}"
`)
	t.Setenv("COTPROMPT_AGENT_INSTRUCTION", "from env")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Agent)
	assert.Equal(t, "from env", cfg.Agent.Instruction)
	require.NotNil(t, cfg.Agent.Prompt)
	assert.Equal(t, "{{query}}", cfg.Agent.Prompt.FirstPrompt)
}

func TestSaveTo_RoundTrip(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	in := &Config{
		Version: "1",
		Log:     LogConfig{Level: "debug", Format: "json"},
		Server:  ServerConfig{Host: "0.0.0.0", Port: 8500},
		Agent: &AgentConfig{
			Instruction: "Be precise.",
			Prompt:      &AgentPromptConfig{FirstPrompt: "{{instruction}} {{query}}"},
		},
	}
	require.NoError(t, SaveTo(in, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in.Log, out.Log)
	assert.Equal(t, in.Server, out.Server)
	require.NotNil(t, out.Agent)
	require.NotNil(t, out.Agent.Prompt)
	assert.Equal(t, "{{instruction}} {{query}}", out.Agent.Prompt.FirstPrompt)
}
