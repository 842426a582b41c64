package main

import (
	"os"

	mongoadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/mongo"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSitemapCmd(v *viper.Viper) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Render sitemap.xml from the available listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			s := loadSettings(v)
			st, err := openStore(ctx, s, false)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			sitemap := service.NewSitemapService(mongoadapter.NewListingRepository(st.db), nil, s.BaseURL, "", st.log)
			data, err := sitemap.Refresh(ctx)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	cmd.Flags().String("site_base_url", "", "public site URL used in <loc> (env SITE_BASE_URL)")
	return cmd
}
