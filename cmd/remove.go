package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/authorfile/author/internal/authors"
	"github.com/authorfile/author/internal/tui"
)

// promptSelect and isInteractive are variables so tests can override them
var (
	promptSelect  = tui.MultiSelect
	isInteractive = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
)

// removeCmd drops logins from the author file. Without arguments it prompts
// for an interactive selection among the current members.
var removeCmd = &cobra.Command{
	Use:   "remove [<login>...]",
	Short: "Remove logins from the author list",
	Long: `Remove logins from the author list.

With logins given, removes them directly; logins not on the list are ignored.
Without logins, presents an interactive multi-select over the current list.
Cancelling the selection leaves the list untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := repoRoot()
		if err != nil {
			return err
		}

		set, err := authors.Load(root)
		if err != nil {
			return err
		}

		removals := args
		if len(removals) == 0 {
			if set.Len() == 0 {
				return nil
			}
			if !isInteractive() {
				return fmt.Errorf("no logins given and stdin is not a terminal; run 'remove <login>...'")
			}
			selected, err := promptSelect("Select authors to remove", set.Sorted())
			if errors.Is(err, tui.ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}
			if len(selected) == 0 {
				return nil
			}
			removals = selected
		}

		removed := 0
		for _, login := range removals {
			if set.Contains(login) {
				set.Remove(login)
				removed++
			}
		}
		if err := authors.Save(root, set); err != nil {
			return err
		}

		if len(args) > 0 && removed > 0 {
			fmt.Printf("Removed %d author(s)\n", removed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
