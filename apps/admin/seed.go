package main

import (
	"context"
	"fmt"

	"github.com/volatiletech/null/v8"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/homeroom"
	"github.com/mrsmranau/ehomeroom/core/user"
)

var (
	seedHomerooms = []homeroom.NewHomeroom{
		{NamaHomeroom: "Al-Farabi", Tingkatan: "Tingkatan 4", NamaGuru: null.StringFrom("Cikgu Aminah")},
		{NamaHomeroom: "Ibnu Sina", Tingkatan: "Tingkatan 5", NamaGuru: null.StringFrom("Cikgu Rahman")},
	}
	seedUsers = []user.NewUser{
		{Username: "admin", NamaPenuh: "Pentadbir Sistem", Role: user.RoleAdmin, Password: "admin123"},
		{Username: "pengguna1", NamaPenuh: "Cikgu Aminah", Role: user.RolePengguna, Password: "user123"},
	}
)

// seed creates the demo homerooms and accounts. Existing rows are left alone,
// so it is safe to run more than once. The demo passwords skip the password policy.
func (cli *commandLine) seed() error {
	ctx := context.Background()

	hrs, err := cli.hrSvc.QueryAll(ctx)
	if err != nil {
		return err
	}
	if len(hrs) == 0 {
		for _, nh := range seedHomerooms {
			hr, err := cli.hrSvc.Create(ctx, nh)
			if err != nil {
				return describe(err)
			}
			hrs = append(hrs, hr)
			fmt.Fprintf(cli.out, "homeroom %q created (id %d)\n", hr.NamaHomeroom, hr.ID)
		}
	}

	for _, nu := range seedUsers {
		_, err := cli.usrSvc.GetByUsername(ctx, nu.Username)
		if err == nil {
			fmt.Fprintf(cli.out, "user %q exists, skipped\n", nu.Username)
			continue
		}
		if !core.IsNotFound(err) {
			return err
		}
		if nu.Role == user.RolePengguna {
			nu.HomeroomID = null.Int64From(hrs[0].ID)
		}
		usr, err := cli.usrSvc.Create(ctx, nu)
		if err != nil {
			return describe(err)
		}
		fmt.Fprintf(cli.out, "user %q created (id %d)\n", usr.Username, usr.ID)
	}
	return nil
}
