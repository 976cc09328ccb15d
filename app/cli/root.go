package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/x-xyz/ensmetadata/app/bootstrap"
	"github.com/x-xyz/ensmetadata/base/log"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ensmeta",
	Short: "Inspect ENS names the way the metadata service sees them",
	Long: `ensmeta resolves ENS tokens against the configured networks and prints
the metadata document, the protocol version or the decoded NameWrapper fuses.
Commands touching the chain read the same yaml config as the api server.`,
	SilenceUsage: true,
}

func Execute() {
	defer log.Sync()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "infra/configs/config.yaml", "path of the yaml config")
}

// loadConfig is the PreRunE of commands that need networks.
func loadConfig(cmd *cobra.Command, args []string) error {
	return bootstrap.ReadConfig(configPath)
}

func printJson(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
