package main

import (
	"math/big"
	"strings"

	"github.com/spf13/cobra"
	"github.com/x-xyz/ensmetadata/domain/namewrapper"
	"golang.org/x/xerrors"
)

var fusesCmd = &cobra.Command{
	Use:   "fuses <value>",
	Short: "Decode NameWrapper fuses given in decimal or 0x hex",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fuses, err := parseFuses(args[0])
		if err != nil {
			return err
		}
		return printJson(struct {
			Fuses  namewrapper.DecodedFuses `json:"fuses"`
			State  namewrapper.WrapperState `json:"state"`
			Burned []string                 `json:"burned"`
			RawHex string                   `json:"raw"`
		}{
			Fuses:  namewrapper.Decode(fuses),
			State:  namewrapper.GetWrapperState(fuses),
			Burned: fuses.Names(),
			RawHex: "0x" + big.NewInt(int64(fuses)).Text(16),
		})
	},
}

func parseFuses(s string) (namewrapper.Fuses, error) {
	n, ok := new(big.Int).SetString(strings.TrimPrefix(s, "0x"), base(s))
	if !ok || n.Sign() < 0 || n.BitLen() > 32 {
		return 0, xerrors.Errorf("invalid fuses %q", s)
	}
	return namewrapper.Fuses(n.Uint64()), nil
}

func base(s string) int {
	if strings.HasPrefix(s, "0x") {
		return 16
	}
	return 10
}

func init() {
	rootCmd.AddCommand(fusesCmd)
}
