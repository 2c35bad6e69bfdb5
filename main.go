package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phravins/landinggen/internal/clipboard"
	"github.com/phravins/landinggen/internal/config"
	"github.com/phravins/landinggen/internal/generate"
	"github.com/phravins/landinggen/internal/logging"
	"github.com/phravins/landinggen/internal/tui"
	"github.com/phravins/landinggen/internal/web"
	"github.com/phravins/landinggen/pkg/utils"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "landinggen",
	Version: config.Version,
	Short:   "Generate landing page components",
	Long: `landinggen turns a few choices into ready-to-paste React + Tailwind code:
- Hero sections (centered, split or minimal)
- Navigation bars with menu items and an auth button
- YAML presets, an interactive configurator and an HTTP API`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(generate.NewHeroCmd())
	rootCmd.AddCommand(generate.NewNavbarCmd())
	rootCmd.AddCommand(generate.NewRenderCmd())
	rootCmd.AddCommand(generate.NewListCmd())
	rootCmd.AddCommand(generate.NewConfigCmd())
	rootCmd.AddCommand(generate.NewHistoryCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tui [component]",
		Short: "Open the interactive configurator",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return tui.RunForm(args[0], cfg, clipboard.System{})
			}
			return tui.RunRoot(cfg, clipboard.System{})
		},
	})

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = cfg.ServerAddr
			}
			dev, _ := cmd.Flags().GetBool("dev")

			logger, err := logging.New(cfg.LogLevel, dev)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return web.NewServer(logger).ListenAndServe(ctx, addr)
		},
	}
	serveCmd.Flags().String("addr", "", "Listen address (default server_addr from config)")
	serveCmd.Flags().Bool("dev", false, "Human-readable logs")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	// If args were passed (CLI mode), just run once
	if len(os.Args) > 1 {
		if err := rootCmd.ExecuteContext(context.Background()); err != nil {
			utils.PrintError(fmt.Sprintf("Error: %v", err))
			os.Exit(1)
		}
		return
	}
	// Default TUI mode
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.PrintError(fmt.Sprintf("Error loading config: %v", err))
		os.Exit(1)
	}
	if err := tui.RunRoot(cfg, clipboard.System{}); err != nil {
		utils.PrintError(err.Error())
		os.Exit(1)
	}
}
