package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/termtour/internal/ui"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the examples",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			ui.Panel(catalogLines())
		},
	}
}

func catalogLines() []string {
	cat := Catalog()
	lines := []string{
		fmt.Sprintf("%s  %s %d", ui.TitleStyle.Render("termtour"), ui.AccentStyle.Render("examples"), len(cat)),
		"",
	}
	for i, ex := range cat {
		lines = append(lines, fmt.Sprintf("%s %-8s %s  %s",
			ui.MutedStyle.Render(fmt.Sprintf("%2d.", i+1)),
			ex.Name,
			ex.Title,
			ui.MutedStyle.Render(ex.Summary),
		))
	}
	lines = append(lines, "", ui.MutedStyle.Render("Tip: start one with `termtour counter`"))
	return lines
}
