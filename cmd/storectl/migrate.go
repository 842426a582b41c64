package main

import (
	mongoadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/mongo"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newMigrateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Seed the default footer contact and social links when none exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			st, err := openStore(ctx, loadSettings(v), false)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			report, err := service.NewMigrationService(mongoadapter.NewSiteRepository(st.db), st.log).MigrateFooter(ctx)
			if err != nil {
				return err
			}
			printf(cmd, "footer contact: %s (%s)\n", report.Contact.Status, report.Contact.Message)
			printf(cmd, "social links:   %s (%s)\n", report.Socials.Status, report.Socials.Message)
			return nil
		},
	}
}
