package cmd

import (
	"fmt"

	"solanaswap/core"

	"github.com/spf13/cobra"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "print the SKILL.md the agent loads this skill from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if schemaOnly, _ := cmd.Flags().GetBool("schema"); schemaOnly {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), core.RequestSchema)
			return err
		}

		skill, err := provideSkillMetadata()
		if err != nil {
			return err
		}

		doc, err := skill.Markdown()
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(doc)
		return err
	},
}

func init() {
	rootCmd.AddCommand(manifestCmd)

	manifestCmd.Flags().Bool("schema", false, "only print the json schema of the request argument")
}
