package main

import (
	"context"
	"fmt"
	"foodgram/internal/accounts"
	"foodgram/internal/config"
	"foodgram/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand constructs the 'token' subcommand that issues an auth token
// for an existing user without knowing their password.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issues an auth token for the user with the given email",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			email, _ := cmd.Flags().GetString("email")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			tokens, err := accounts.NewTokens(cfg.JWT.PrivateKey, cfg.JWT.PublicKey, ttl)
			if err != nil {
				logger.Fatal(ctx, "could not load JWT keys", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			user, err := strg.UserByEmail(ctx, email)
			if err != nil {
				logger.Fatal(ctx, "could not get user", zap.Error(err))
			}
			if user == nil {
				logger.Fatal(ctx, "user not found", zap.String("email", email))
			}

			signed, _, err := tokens.Issue(user.ID)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("email", "", "Email of the user the token is issued for")
	cmd.Flags().Duration("ttl", cfg.JWT.TTL, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
