package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) Stats(ctx context.Context) error {
	stats, err := a.api.Stats(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Connections served: %d\n", stats.Connections)
	fmt.Printf("Data entries:       %d\n", stats.DataEntries)
	fmt.Printf("Exports produced:   %d\n", stats.Exports)
	return nil
}
