package tui

import "fmt"

// EmptyListNotice renders the hint shown when the author list is empty,
// pointing at the add subcommand of the named program.
func EmptyListNotice(command string) string {
	return noticeStyle.Render("no authors specified, run ") +
		noticeCommandStyle.Render(fmt.Sprintf("%s add login", command)) +
		noticeStyle.Render(" to add them")
}
