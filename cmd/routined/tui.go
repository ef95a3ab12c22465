package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"routined/internal/autosave"
	"routined/internal/model"
	"routined/internal/session"
	"routined/internal/storage"
	"routined/internal/update"
)

const snapshotKey = "local"

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := update.LoadRuntimeConfigFile(update.DefaultRuntimeConfig(), configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = update.RuntimeConfigFromEnv(cfg)

	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	snap, err := store.Load(ctx, snapshotKey)
	cancel()

	var sess *session.Session
	switch {
	case err == nil:
		sess = session.New(snap, nil)
	case errors.Is(err, storage.ErrNotFound):
		sess = session.NewDefault(nil)
		sess.SetVoiceEnabled(cfg.VoiceEnabled)
	case errors.Is(err, storage.ErrCorruptSnapshot):
		return fmt.Errorf("stored snapshot is corrupt, refusing to overwrite: %w", err)
	default:
		return fmt.Errorf("load snapshot: %w", err)
	}
	sess.StartDay()

	delay := autosave.DefaultDelay
	if cfg.AutosaveDelayMS > 0 {
		delay = time.Duration(cfg.AutosaveDelayMS) * time.Millisecond
	}
	saver := autosave.New(delay, func(snap model.Snapshot) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Save(ctx, snapshotKey, snap)
	})
	defer saver.Close()
	sess.SetOnChange(saver.Offer)

	program := tea.NewProgram(update.NewModelWithConfig(sess, cfg, saver))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("routined failed: %w", err)
	}
	return nil
}
