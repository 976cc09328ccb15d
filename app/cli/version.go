package main

import (
	"github.com/spf13/cobra"
	"github.com/x-xyz/ensmetadata/app/bootstrap"
	"github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/domain"
)

type tokenFlags struct {
	network  string
	contract string
	id       string
}

func (f *tokenFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.network, "network", "mainnet", "network name from the config")
	cmd.Flags().StringVar(&f.contract, "contract", "", "registrar or NameWrapper address")
	cmd.Flags().StringVar(&f.id, "id", "", "token id, 0x hash or name")
	_ = cmd.MarkFlagRequired("contract")
	_ = cmd.MarkFlagRequired("id")
}

// resolve wires the use cases and resolves the version of the token.
func (f *tokenFlags) resolve(c ctx.Ctx) (*bootstrap.UseCases, domain.NetworkCfg, *domain.VersionResult, error) {
	uc := bootstrap.New(c)
	network, err := uc.Networks.Get(f.network)
	if err != nil {
		return nil, domain.NetworkCfg{}, nil, err
	}
	res, err := uc.Version.Resolve(c, network, domain.Address(f.contract), domain.ParseIdentifier(f.id))
	if err != nil {
		return nil, domain.NetworkCfg{}, nil, err
	}
	return uc, network, res, nil
}

var versionFlags tokenFlags

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Detect whether a token is v1, v1w or v2",
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, res, err := versionFlags.resolve(ctx.From(cmd.Context()))
		if err != nil {
			return err
		}
		return printJson(map[string]string{
			"version": string(res.Version),
			"id":      res.Id.Hex(),
		})
	},
}

func init() {
	versionFlags.register(versionCmd)
	rootCmd.AddCommand(versionCmd)
}
