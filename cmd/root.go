package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/authorfile/author/internal/authors"
	"github.com/authorfile/author/internal/gitrepo"
	"github.com/authorfile/author/internal/tui"
)

var version = "1.0.0" // This will be set during build

// rootCmd represents the base command; invoked without a subcommand it lists
// the stored authors.
var rootCmd = &cobra.Command{
	Use:   "author",
	Short: "Maintain the project author list",
	Long: `author keeps a deduplicated, sorted list of contributor logins in an
author.txt file at the root of the enclosing git repository.

Run without arguments to list authors, 'add' to record new ones and 'remove'
to drop them (interactively when no logins are given).`,
	Args: cobra.NoArgs,
}

func runList() error {
	root, err := repoRoot()
	if err != nil {
		return err
	}

	set, err := authors.Load(root)
	if err != nil {
		return err
	}

	if set.Len() == 0 {
		fmt.Println(tui.EmptyListNotice(rootCmd.Name()))
		return nil
	}
	for _, login := range set.Sorted() {
		fmt.Println(login)
	}
	return nil
}

// repoRoot locates the enclosing repository starting from the working
// directory. Every command goes through here before touching the author file.
func repoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	return gitrepo.FindRoot(cwd)
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runList()
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of author",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("author v%s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
}
