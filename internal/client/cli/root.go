package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	if a.deptName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.deptName)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the College Data Portal CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)

	// clean close: tell the server we are leaving before dropping the socket
	if err := a.api.Disconnect(ctx); err != nil {
		log.Println(err.Error())
	}
}
