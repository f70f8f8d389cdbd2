package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cotprompt/internal/cli/defaults"
	"cotprompt/internal/config"
	"cotprompt/internal/prompt"
)

// ExampleRequestFile 是 init 写入的示例请求文件名
const ExampleRequestFile = "request.example.yaml"

// InitOptions init 命令选项
type InitOptions struct {
	Force bool
}

// NewInitCmd 创建 init 命令
func NewInitCmd() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration",
		Long: `Write a starter configuration with the default ReAct completion template,
plus an example render request next to it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := GetCLIContext(cmd)
			if cliCtx == nil {
				return fmt.Errorf("cli context not initialized")
			}
			return RunInit(cmd, cliCtx.ConfigPath, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "overwrite existing configuration")

	return cmd
}

// DefaultConfig 返回 init 写入的配置
func DefaultConfig() *config.Config {
	return &config.Config{
		Version: "1",
		Log:     config.LogConfig{Level: "info", Format: "console"},
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 8390},
		Agent: &config.AgentConfig{
			Instruction: "You are a helpful assistant.",
			Prompt:      &config.AgentPromptConfig{FirstPrompt: prompt.DefaultCompletionTemplate},
		},
	}
}

// RunInit 执行初始化
func RunInit(cmd *cobra.Command, configPath string, opts *InitOptions) error {
	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", configPath)
	}

	if err := config.SaveTo(DefaultConfig(), configPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	examplePath := filepath.Join(filepath.Dir(configPath), ExampleRequestFile)
	if _, err := os.Stat(examplePath); err != nil || opts.Force {
		if err := os.WriteFile(examplePath, defaults.ExampleRequest(), 0644); err != nil {
			return fmt.Errorf("write example request: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized cotprompt\n")
	fmt.Fprintf(out, "  Config:  %s\n", configPath)
	fmt.Fprintf(out, "  Example: %s\n", examplePath)
	return nil
}
