package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"routined/internal/identity"
	"routined/internal/storage"
	"routined/internal/syncserver"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		dbPath   string
		secret   string
		tokenTTL time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the snapshot sync server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = strings.TrimSpace(os.Getenv("ROUTINED_TOKEN_SECRET"))
			}
			if secret == "" {
				return fmt.Errorf("a token secret is required: --secret or ROUTINED_TOKEN_SECRET")
			}

			if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create data dir: %w", err)
				}
			}
			store, err := storage.OpenSQLite(dbPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer store.Close()

			users, err := identity.NewUserStore(store.DB())
			if err != nil {
				return err
			}
			tokens, err := identity.NewTokenManager(secret, tokenTTL)
			if err != nil {
				return err
			}

			srv := syncserver.NewServer(users, tokens, store, nil)
			fmt.Printf("routined sync server listening on %s\n", addr)
			return srv.Router().Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dbPath, "db", "routined-server.db", "sqlite database path")
	cmd.Flags().StringVar(&secret, "secret", "", "token signing secret")
	cmd.Flags().DurationVar(&tokenTTL, "token-ttl", identity.DefaultTokenTTL, "access token lifetime")

	return cmd
}
