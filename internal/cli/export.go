package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/meetly/meetly/internal/common"
)

// ExportCalendar writes the session's meetings to an iCalendar file and
// reports where it landed.
func (a *App) ExportCalendar(ctx context.Context) error {
	path, err := a.export.Export(ctx, a.current)
	if err != nil {
		if errors.Is(err, common.ErrNothingToExport) {
			printlnFn("There are no meetings to export yet.")
			return nil
		}
		printlnFn("Could not export the calendar.")
		return err
	}

	printlnFn(fmt.Sprintf("Calendar exported to %s", path))
	return nil
}
