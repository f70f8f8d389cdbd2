package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cotprompt/internal/config"
	"cotprompt/internal/server"
	"cotprompt/internal/watch"
	"cotprompt/pkg/logger"
)

// ServeOptions serve 命令选项
type ServeOptions struct {
	Host        string
	Port        int
	WatchConfig bool
}

// NewServeCmd 创建 serve 命令
func NewServeCmd() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the prompt render API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := GetCLIContext(cmd)
			if cliCtx == nil {
				return fmt.Errorf("cli context not initialized")
			}
			return runServe(cmd.Context(), cliCtx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Host, "host", "", "listen host (overrides config)")
	cmd.Flags().IntVarP(&opts.Port, "port", "p", 0, "listen port (overrides config)")
	cmd.Flags().BoolVar(&opts.WatchConfig, "watch-config", false, "reload the agent when the config file changes")

	return cmd
}

func runServe(ctx context.Context, cliCtx *CLIContext, opts *ServeOptions) error {
	serverCfg := cliCtx.Config.Server
	if opts.Host != "" {
		serverCfg.Host = opts.Host
	}
	if opts.Port != 0 {
		serverCfg.Port = opts.Port
	}

	srv := server.New(serverCfg, cliCtx.Config.Agent, Version)
	if cliCtx.Config.Agent == nil {
		logger.Warn().Str("config", cliCtx.ConfigPath).Msg("no agent configured; requests must carry their own")
	}

	if opts.WatchConfig {
		w, err := watch.New(func(path string) { reloadAgent(srv, path) }, 0, cliCtx.ConfigPath)
		if err != nil {
			return err
		}
		defer w.Stop()
		if err := w.Start(); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// reloadAgent 重新加载配置并替换服务的 agent
func reloadAgent(srv *server.Server, path string) {
	cfg, err := config.Load(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("config reload failed")
		return
	}
	srv.SetAgent(cfg.Agent)
	logger.Info().Str("path", path).Bool("agent", cfg.Agent != nil).Msg("config reloaded")
}
