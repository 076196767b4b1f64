package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) Recent(ctx context.Context) error {
	entries, err := a.api.Recent(ctx, 0)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No entries yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-20s %-20s %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Department, e.EntryType, e.Preview)
	}
	return nil
}
