package main

import (
	"context"
	"foodgram/internal/config"
	"foodgram/internal/recipes"
	"foodgram/pkg/logger"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCommand constructs the 'import' subcommand loading the tag and
// ingredient catalogues from JSON files. Running it twice is harmless.
func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Imports tags and ingredients from JSON files",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			ingredientsPath, _ := cmd.Flags().GetString("ingredients")
			tagsPath, _ := cmd.Flags().GetString("tags")
			if ingredientsPath == "" && tagsPath == "" {
				logger.Fatal(ctx, "nothing to import, pass --ingredients and/or --tags")
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if tagsPath != "" {
				data, err := os.ReadFile(tagsPath)
				if err != nil {
					logger.Fatal(ctx, "could not read tags file", zap.Error(err))
				}
				n, err := recipes.ImportTags(ctx, strg, data)
				if err != nil {
					logger.Fatal(ctx, "could not import tags", zap.Error(err))
				}
				logger.Info(ctx, "tags imported", zap.String("file", tagsPath), zap.Int64("inserted", n))
			}

			if ingredientsPath != "" {
				data, err := os.ReadFile(ingredientsPath)
				if err != nil {
					logger.Fatal(ctx, "could not read ingredients file", zap.Error(err))
				}
				n, err := recipes.ImportIngredients(ctx, strg, data)
				if err != nil {
					logger.Fatal(ctx, "could not import ingredients", zap.Error(err))
				}
				logger.Info(ctx, "ingredients imported", zap.String("file", ingredientsPath), zap.Int64("inserted", n))
			}
		},
	}

	cmd.Flags().String("ingredients", "", "JSON file with [{name, measurement_unit}] records")
	cmd.Flags().String("tags", "", "JSON file with [{name, color, slug}] records")

	return cmd
}
