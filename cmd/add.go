package cmd

import (
	"github.com/spf13/cobra"

	"github.com/authorfile/author/internal/authors"
)

// addCmd records one or more logins in the author file, creating it on first
// use. Already-present logins are collapsed silently.
var addCmd = &cobra.Command{
	Use:   "add <login> [<login>...]",
	Short: "Add logins to the author list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := repoRoot()
		if err != nil {
			return err
		}

		set, err := authors.Load(root)
		if err != nil {
			return err
		}
		for _, login := range args {
			set.Add(login)
		}
		return authors.Save(root, set)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
