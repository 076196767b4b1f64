package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter department email", os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	deptName, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		log.Println(err.Error())
		return err
	}

	a.deptName = deptName
	fmt.Printf("Welcome, %s!\n", deptName)
	return nil
}
