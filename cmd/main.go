// Command foodgram runs the recipe API and its administrative tasks.
package main

import (
	"context"
	"flag"
	"foodgram/internal/accounts"
	"foodgram/internal/config"
	"foodgram/internal/recipes"
	"foodgram/pkg/logger"
	"foodgram/pkg/media"
	"foodgram/pkg/revocation"
	"foodgram/pkg/storage/postgres"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres exits the process when the pool cannot be created.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getRedis connects to the Redis server holding revoked tokens.
func getRedis(ctx context.Context, cfg *config.Config) (*redis.Client, func()) {
	client, err := revocation.Dial(ctx, revocation.Options{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return client, func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

func getTokens(ctx context.Context, cfg *config.Config) *accounts.Tokens {
	tokens, err := accounts.NewTokens(cfg.JWT.PrivateKey, cfg.JWT.PublicKey, cfg.JWT.TTL)
	if err != nil {
		logger.Fatal(ctx, "could not load JWT keys", zap.Error(err))
	}

	return tokens
}

func getAccounts(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL, client redis.UniversalClient) accounts.Accounts {
	return accounts.New(strg, getTokens(ctx, cfg), revocation.New(client), accounts.Options{})
}

func getRecipes(cfg *config.Config, strg *postgres.PgSQL, store media.Store) recipes.Recipes {
	return recipes.New(strg, store, recipes.Options{MaxAttempts: cfg.Worker.MaxAttempts})
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "foodgram",
		Short: "Recipe sharing API",
	}

	// Subcommand defaults depend on the config, so -c is read before cobra
	// runs. Cobra only needs to accept the flag.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(nopWriter{})
	configPath := flags.String("c", "config.yml", "The config file path")
	_ = flags.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		importCommand(cfg),
		userCommand(cfg),
		tokenCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs picks the -c/--config flag out of args so it can be read before
// cobra parses the subcommand flags.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch {
		case arg == "-c" || arg == "--config" || arg == "-config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		case len(arg) > 3 && arg[:3] == "-c=":
			return []string{arg}
		case len(arg) > 9 && arg[:9] == "--config=":
			return []string{"-c=" + arg[9:]}
		}
	}

	return nil
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
