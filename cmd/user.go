package main

import (
	"context"
	"fmt"
	"foodgram/internal/accounts"
	"foodgram/internal/config"
	"foodgram/pkg/logger"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func userCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manages user accounts",
	}
	cmd.AddCommand(userCreateCommand(cfg))

	return cmd
}

// userCreateCommand registers an account, optionally with staff rights which
// the API never grants.
func userCreateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Creates a user account",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			input := accounts.RegisterInput{}
			input.Email, _ = cmd.Flags().GetString("email")
			input.Username, _ = cmd.Flags().GetString("username")
			input.FirstName, _ = cmd.Flags().GetString("first-name")
			input.LastName, _ = cmd.Flags().GetString("last-name")
			input.Password, _ = cmd.Flags().GetString("password")
			input.IsStaff, _ = cmd.Flags().GetBool("staff")
			if input.Password == "" {
				input.Password = os.Getenv("FOODGRAM_PASSWORD")
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			// registration needs neither token keys nor the revocation list
			svc := accounts.New(strg, nil, nil, accounts.Options{})
			user, err := svc.Register(ctx, input)
			if err != nil {
				logger.Fatal(ctx, "could not create user", zap.Error(err))
			}

			fmt.Println(user.ID) //nolint: forbidigo
		},
	}

	cmd.Flags().String("email", "", "Email address used to log in")
	cmd.Flags().String("username", "", "Public username")
	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	cmd.Flags().String("password", "", "Password, defaults to $FOODGRAM_PASSWORD")
	cmd.Flags().Bool("staff", false, "Grant staff rights (may edit and delete any recipe)")
	for _, name := range []string{"email", "username", "first-name", "last-name"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
