package main

import (
	"fmt"
	"io"
	"os"

	mongoadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/mongo"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newImportCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: `Bulk import listings from "name[,price[,category]]" lines`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			s := loadSettings(v)
			st, err := openStore(ctx, s, true)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			listings := service.NewListingService(
				mongoadapter.NewListingRepository(st.db),
				st.catalogCache(s.CacheTTL),
				service.NewNopPublisher(),
				st.log,
			)
			res, err := listings.BulkImport(ctx, text)
			if res != nil {
				printf(cmd, "added %d, skipped %d\n", res.Added, res.Skipped)
				for _, name := range res.SkippedNames {
					printf(cmd, "  skipped %s\n", name)
				}
			}
			return err
		},
	}
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
