package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/homeroom"
	"github.com/mrsmranau/ehomeroom/core/user"
)

var errPasswordMismatch = errors.New("passwords do not match")

// addUser creates a user.User whose password satisfies the password policy.
func (cli *commandLine) addUser(uname, name, role string, homeroomID int64, pwd string) error {
	ctx := context.Background()
	if tag := user.CheckPasswordPolicy(pwd, uname, name); tag != "" {
		return errors.New(user.PasswordPolicyText(tag))
	}
	if homeroomID > 0 {
		if _, err := cli.hrSvc.GetByID(ctx, homeroomID); err != nil {
			return err
		}
	}

	usr, err := cli.usrSvc.Create(ctx, user.NewUser{
		Username:   uname,
		NamaPenuh:  name,
		Role:       role,
		HomeroomID: null.NewInt64(homeroomID, homeroomID > 0),
		Password:   pwd,
	})
	if err != nil {
		return describe(err)
	}
	fmt.Fprintf(cli.out, "user %q created (id %d)\n", usr.Username, usr.ID)
	return nil
}

func (cli *commandLine) addHomeroom(name, tingkatan, guru string) error {
	hr, err := cli.hrSvc.Create(context.Background(), homeroom.NewHomeroom{
		NamaHomeroom: name,
		Tingkatan:    tingkatan,
		NamaGuru:     null.NewString(guru, guru != ""),
	})
	if err != nil {
		return describe(err)
	}
	fmt.Fprintf(cli.out, "homeroom %q created (id %d)\n", hr.NamaHomeroom, hr.ID)
	return nil
}

// describe flattens validation errors into one line for the terminal.
func describe(err error) error {
	var flds []string
	var vErr *core.ValidationError
	var vErrs validator.ValidationErrors
	switch {
	case errors.As(err, &vErr):
		for _, f := range vErr.Fields {
			flds = append(flds, f.Field+": "+f.Error)
		}
	case errors.As(err, &vErrs):
		for fld, msg := range core.TranslateValidationErrors(vErrs) {
			flds = append(flds, fld+": "+msg)
		}
		sort.Strings(flds)
	}
	if len(flds) == 0 {
		return err
	}
	return errors.New(strings.Join(flds, "; "))
}
