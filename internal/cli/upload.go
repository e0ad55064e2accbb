package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/clipdrop/internal/common"
)

func (a *App) upload(ctx context.Context) int {
	res, err := a.uploads.Run(ctx)
	if err != nil {
		var f *common.Failure
		if errors.As(err, &f) {
			fmt.Printf("%s: %s\n", f.Title(), f.Err)
			if f.Kind == common.KindConfiguration {
				fmt.Println("Run `clipdrop prefs` to fix the storage configuration.")
			}
		} else {
			fmt.Println("Error:", err)
		}
		return 1
	}

	fmt.Println("Uploaded:", res.Record.URL)
	fmt.Println("The public URL has been copied to your clipboard.")
	if res.HistoryRepaired {
		fmt.Println("Note: stored upload history was corrupted and has been reset.")
	}
	return 0
}
