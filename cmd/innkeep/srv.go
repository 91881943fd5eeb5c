package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"innkeep/internal/auth"
	"innkeep/internal/blobstore"
	"innkeep/internal/config"
	"innkeep/internal/server"
	"innkeep/internal/store"
)

func newSrvCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "srv",
		Short: "Run the innkeep API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg == nil {
				return fmt.Errorf("config not initialized")
			}
			if cfg.DBPath == "" {
				return fmt.Errorf("db path is required")
			}
			if cfg.TokenSecret == "" {
				return fmt.Errorf("token secret is required: set token_secret or %s", config.TokenSecretEnvKey)
			}

			logger := slog.Default().With("component", "server")

			addr, err := server.ListenAddr(cfg.APIURL)
			if err != nil {
				return err
			}

			logger.Info("opening database", "path", cfg.DBPath)
			st, err := store.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			blobs, err := blobstore.NewLocalDir(cfg.UploadsDir)
			if err != nil {
				return err
			}

			tokens, err := auth.NewTokenIssuer(cfg.TokenSecret, auth.DefaultTokenTTL)
			if err != nil {
				return err
			}

			srv := server.New(addr, st, blobs, tokens, blobs.Root(), server.Options{
				RequireAuth:        cfg.RequireAuth,
				CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			}, logger)
			return srv.ListenAndServe()
		},
	}
}
