// Package ui renders non-interactive output for the plantdeck subcommands.
//
// Printer writes category lists, plant card grids and error boxes with
// lipgloss styling sized to the terminal. Encode handles the json and yaml
// variants of --format, so scripts get plain data while people get cards.
//
// Example:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	if format == ui.FormatText {
//	    p.PrintCategories(categories)
//	    return nil
//	}
//	return ui.Encode(cmd.OutOrStdout(), format, categories)
package ui
