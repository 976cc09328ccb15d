package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/domain"
)

var (
	metadataFlags tokenFlags
	loadImages    bool
)

var metadataCmd = &cobra.Command{
	Use:     "metadata",
	Short:   "Print the metadata document of a token",
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := ctx.From(cmd.Context())
		uc, network, res, err := metadataFlags.resolve(c)
		if err != nil {
			return err
		}
		m, err := uc.Metadata.GetDomain(c, &domain.DomainRequest{
			Network:         network,
			ContractAddress: domain.Address(metadataFlags.contract),
			Identifier:      res.Id,
			Version:         res.Version,
			LoadImages:      loadImages,
			Host:            viper.GetString("server.host"),
		})
		if err != nil {
			return err
		}
		return printJson(m)
	},
}

func init() {
	metadataFlags.register(metadataCmd)
	metadataCmd.Flags().BoolVar(&loadImages, "load-images", false, "embed the image instead of linking it")
	rootCmd.AddCommand(metadataCmd)
}
