package main

import (
	"context"
	"fmt"
)

func (cli *commandLine) resetPassword(uname, pwd string) error {
	ctx := context.Background()
	usr, err := cli.usrSvc.GetByUsername(ctx, uname)
	if err != nil {
		return err
	}
	if err = cli.usrSvc.SetPassword(ctx, usr.ID, pwd, true); err != nil {
		return describe(err)
	}
	fmt.Fprintf(cli.out, "password of %q updated\n", usr.Username)
	return nil
}
