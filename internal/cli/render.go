package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cotprompt/internal/config"
	"cotprompt/internal/runner"
	"cotprompt/internal/watch"
)

// RenderOptions render 命令选项
type RenderOptions struct {
	File  string
	JSON  bool
	Watch bool
}

// NewRenderCmd 创建 render 命令
func NewRenderCmd() *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the completion prompt for a request file",
		Long: `Render the completion prompt for a YAML (or JSON) request file holding
instruction, tools, history, scratchpad and query. The configured agent is
used unless the file carries its own.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := GetCLIContext(cmd)
			if cliCtx == nil {
				return fmt.Errorf("cli context not initialized")
			}
			if opts.Watch {
				return runRenderWatch(cmd, cliCtx.Config.Agent, opts)
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), cliCtx.Config.Agent, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "request file (YAML or JSON)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "output the full result as JSON")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "re-render whenever the request file changes")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// LoadRequest 读取并解析请求文件
func LoadRequest(path string) (runner.Request, error) {
	var req runner.Request

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read request: %w", err)
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("parse request %s: %w", path, err)
	}
	return req, nil
}

func runRender(ctx context.Context, out io.Writer, agent *config.AgentConfig, opts *RenderOptions) error {
	req, err := LoadRequest(opts.File)
	if err != nil {
		return err
	}

	res, err := runner.Render(ctx, agent, req)
	if err != nil {
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, err = fmt.Fprintln(out, res.Prompt)
	return err
}

func runRenderWatch(cmd *cobra.Command, agent *config.AgentConfig, opts *RenderOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	render := func() {
		if err := runRender(ctx, out, agent, opts); err != nil {
			fmt.Fprintf(errOut, "render failed: %v\n", err)
		}
	}

	w, err := watch.New(func(string) { render() }, 0, opts.File)
	if err != nil {
		return err
	}
	defer w.Stop()
	if err := w.Start(); err != nil {
		return fmt.Errorf("watch %s: %w", opts.File, err)
	}

	render()
	<-ctx.Done()
	return nil
}
