package main

import (
	"context"

	"github.com/brightacademy/backend/core/admin"
)

func (cli *commandLine) addAdmin(name, email, pwd string) error {
	ctx := context.Background()

	na := admin.NewAdmin{
		Name:     name,
		Email:    email,
		Password: pwd,
	}
	if err := na.Validate(ctx, cli.admSvc); err != nil {
		return err
	}
	if _, err := cli.admSvc.Register(ctx, na); err != nil {
		return err
	}
	return nil
}
