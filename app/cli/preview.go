package main

import (
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"
	"github.com/x-xyz/ensmetadata/service/renderer"
)

var previewOut string

var previewCmd = &cobra.Command{
	Use:   "preview <name>",
	Short: "Render the svg card of a name without any chain lookup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svg, err := renderer.New(&renderer.Cfg{}).RenderSVG(args[0], "")
		if err != nil {
			return err
		}
		if previewOut == "" {
			_, err = os.Stdout.Write(svg)
			return err
		}
		return ioutil.WriteFile(previewOut, svg, 0644)
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "write the svg to a file instead of stdout")
	rootCmd.AddCommand(previewCmd)
}
