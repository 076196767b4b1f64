package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) Export(ctx context.Context) error {
	artifact, err := a.api.Export(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Export complete: %s\n", artifact)
	return nil
}
