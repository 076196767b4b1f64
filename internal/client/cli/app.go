package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/client/client"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/client/config"
)

type App struct {
	config   *config.Config
	api      client.Client
	deptName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewPortalClient(c.ServerEndpointAddr, c.DialTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.deptName != ""
}
