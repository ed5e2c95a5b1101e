package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/homeroom"
	"github.com/mrsmranau/ehomeroom/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf   *core.Config
	db     *sqlx.DB
	out    io.Writer
	usrSvc *user.Service
	hrSvc  *homeroom.Service
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS]                                  - run a goose command (up, down, status, version, redo, reset, ...)")
	fmt.Fprintln(cli.out, "  adduser -username U -name NAME -role R [-homeroom ID]   - create a user; the password is prompted")
	fmt.Fprintln(cli.out, "  addhomeroom -name NAME -tingkatan T [-guru NAME]        - create a homeroom")
	fmt.Fprintln(cli.out, "  resetpassword -username USERNAME                        - reset a user's password")
	fmt.Fprintln(cli.out, "  seed                                                    - create the demo homerooms and accounts")
}

// promptPassword reads a password twice without echoing it.
func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	fmt.Fprint(cli.out, "Confirm password:")
	confirm, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	if string(pwd) != string(confirm) {
		return "", errPasswordMismatch
	}
	return string(pwd), nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ContinueOnError)
	addUserCmd.SetOutput(cli.out)
	addUserUname := addUserCmd.String("username", "", "The user's username.")
	addUserName := addUserCmd.String("name", "", "The user's full name.")
	addUserRole := addUserCmd.String("role", user.RolePengguna, "admin | pengguna")
	addUserHomeroom := addUserCmd.Int64("homeroom", 0, "The homeroom id of a pengguna.")

	addHomeroomCmd := flag.NewFlagSet("addhomeroom", flag.ContinueOnError)
	addHomeroomCmd.SetOutput(cli.out)
	addHomeroomName := addHomeroomCmd.String("name", "", "The homeroom name.")
	addHomeroomTingkatan := addHomeroomCmd.String("tingkatan", "", "The form, e.g. \"Tingkatan 4\".")
	addHomeroomGuru := addHomeroomCmd.String("guru", "", "The homeroom teacher's name.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ContinueOnError)
	resetPasswordCmd.SetOutput(cli.out)
	resetPasswordUname := resetPasswordCmd.String("username", "", "The user's username. The password will be prompted next.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])

	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserUname == "" || *addUserName == "" {
			addUserCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		return cli.addUser(*addUserUname, *addUserName, *addUserRole, *addUserHomeroom, pwd)

	case "addhomeroom":
		if err := addHomeroomCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addHomeroomName == "" || *addHomeroomTingkatan == "" {
			addHomeroomCmd.Usage()
			return errHelp
		}
		return cli.addHomeroom(*addHomeroomName, *addHomeroomTingkatan, *addHomeroomGuru)

	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordUname == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordUname, pwd)

	case "seed":
		return cli.seed()

	default:
		cli.printUsage()
		return errHelp
	}
}
