package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pfassina/scribe/internal/app"
	"github.com/pfassina/scribe/internal/config"
	"github.com/pfassina/scribe/internal/ssh"
)

func main() {
	cfg := config.Default()
	configExisted, err := config.LoadFile(&cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading config:", err)
		os.Exit(1)
	}

	workspace := flag.String("workspace", cfg.WorkspacePath, "path to workspace directory")
	serve := flag.Bool("serve", cfg.Serve, "run in SSH server mode")
	listen := flag.String("listen", cfg.Listen, "listen address for --serve (e.g. :2222)")
	themeName := flag.String("theme", cfg.Theme, "color theme name")
	treeWidth := flag.Int("tree-width", cfg.TreeWidth, "file tree panel width")

	flag.Parse()

	// Normalize workspace path: expand ~ and make absolute so the index,
	// watcher, and saves all use stable paths.
	cfg.WorkspacePath = config.ExpandHome(*workspace)
	if abs, err := filepath.Abs(cfg.WorkspacePath); err == nil {
		cfg.WorkspacePath = abs
	}
	cfg.Serve = *serve
	cfg.Listen = *listen
	cfg.Theme = *themeName
	cfg.TreeWidth = *treeWidth

	// A positional argument also selects the workspace: `scribe ~/notes`.
	if args := flag.Args(); len(args) > 0 {
		cfg.WorkspacePath = config.ExpandHome(args[0])
		if abs, err := filepath.Abs(cfg.WorkspacePath); err == nil {
			cfg.WorkspacePath = abs
		}
	}

	if err := os.MkdirAll(cfg.WorkspacePath, 0755); err != nil {
		fmt.Fprintln(os.Stderr, "error creating workspace dir:", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Join(cfg.WorkspacePath, ".scribe"), 0755); err != nil {
		fmt.Fprintln(os.Stderr, "error creating .scribe dir:", err)
		os.Exit(1)
	}

	// First run: persist the chosen workspace so the next launch needs no args.
	if !configExisted {
		if err := config.SaveFile(cfg.WorkspacePath); err != nil {
			fmt.Fprintln(os.Stderr, "error saving config:", err)
		}
	}

	if cfg.Serve {
		runServe(cfg)
		return
	}
	runLocal(cfg)
}

func runLocal(cfg config.Config) {
	// Ensure lipgloss/termenv uses truecolor so syntax highlighting renders
	// accurately instead of being approximated to the 256-color palette.
	if err := os.Setenv("COLORTERM", "truecolor"); err != nil {
		fmt.Fprintln(os.Stderr, "error setting COLORTERM:", err)
		os.Exit(1)
	}

	a := app.New(cfg)
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion())
	a.SetProgram(p)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func runServe(cfg config.Config) {
	s, err := ssh.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		if err := s.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing server: %v\n", err)
		}
	}()

	if err := s.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
