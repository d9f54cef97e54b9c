package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"sasyak-admin/internal/models"
	"sasyak-admin/internal/repository"
	"sasyak-admin/internal/session"
)

var (
	errUsage       = errors.New("usage")
	errNotSignedIn = errors.New("not signed in")
)

const usage = `usage: agridash <command> [flags]

commands:
  login -email E -password P   sign in and keep the session
  logout                       drop the stored session
  whoami                       show the signed-in user
  users <sub>                  list|get|create|update|delete|by-role|paged|
                               assign-manager|remove-manager|team
  tasks <sub>                  list|stats|create|set-status|notifications
  scouting [-q term]           land and scouting records
  dashboard                    headline numbers
  shell                        read commands from stdin, keeping task state
`

func (a *app) dispatch(ctx context.Context, args []string, in io.Reader) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.auth.Logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "users":
		return a.usersCmd(ctx, rest)
	case "tasks":
		return a.tasksCmd(ctx, rest)
	case "scouting":
		return a.scoutingCmd(rest)
	case "dashboard":
		return a.dashboardCmd(ctx)
	case "shell":
		return a.shell(ctx, in)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	}
	fmt.Fprintf(a.out, "unknown command %q\n\n%s", cmd, usage)
	return errUsage
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := a.flags("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := parse(fs, args); err != nil {
		return err
	}
	s, err := a.auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s (%s)\n", s.DisplayName(), s.Role)
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	s, ok := a.auth.Current(ctx)
	if !ok {
		fmt.Fprintln(a.out, "Not signed in.")
		return errNotSignedIn
	}
	fmt.Fprintf(a.out, "%s <%s> %s\n", s.DisplayName(), s.Email, s.Role)
	if c, ok := session.Claims(s); ok && c.ExpiresAt != nil {
		fmt.Fprintf(a.out, "token expires %s\n", humanize.Time(c.ExpiresAt.Time))
	}
	return nil
}

func (a *app) usersCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return errUsage
	}
	sub, rest := args[0], args[1:]
	fs := a.flags("users " + sub)

	switch sub {
	case "list":
		q := fs.String("q", "", "search name, email and role")
		if err := parse(fs, rest); err != nil {
			return err
		}
		users, err := a.users.List(ctx)
		if err != nil {
			return err
		}
		a.printUsers(repository.UserFilter{Q: *q, MatchRole: true}.Apply(users))

	case "get":
		id := fs.Int64("id", 0, "user id")
		if err := parse(fs, rest); err != nil {
			return err
		}
		u, err := a.users.GetByID(ctx, *id)
		if err != nil {
			return err
		}
		a.printUsers([]models.User{*u})

	case "create":
		in := bindUserInput(fs)
		if err := parse(fs, rest); err != nil {
			return err
		}
		u, err := a.users.Create(ctx, in.build(fs))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Created user %d\n", u.ID)
		a.printUsers([]models.User{*u})

	case "update":
		id := fs.Int64("id", 0, "user id")
		in := bindUserInput(fs)
		if err := parse(fs, rest); err != nil {
			return err
		}
		u, err := a.users.Update(ctx, *id, in.build(fs))
		if err != nil {
			return err
		}
		a.printUsers([]models.User{*u})

	case "delete":
		id := fs.Int64("id", 0, "user id")
		if err := parse(fs, rest); err != nil {
			return err
		}
		msg, err := a.users.Delete(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, msg)

	case "by-role":
		role := fs.String("role", string(models.RoleEmployee), "EMPLOYEE, SUPERVISOR or MANAGER")
		q := fs.String("q", "", "search name and email")
		if err := parse(fs, rest); err != nil {
			return err
		}
		users, err := a.users.ListByRole(ctx, models.Role(strings.ToUpper(*role)))
		if err != nil {
			return err
		}
		a.printUsers(repository.UserFilter{Q: *q}.Apply(users))

	case "paged":
		role := fs.String("role", string(models.RoleEmployee), "EMPLOYEE, SUPERVISOR or MANAGER")
		page := fs.Int("page", 0, "page, starting at 0")
		size := fs.Int("size", 10, "page size")
		if err := parse(fs, rest); err != nil {
			return err
		}
		p, err := a.users.ListByRolePaged(ctx, models.Role(strings.ToUpper(*role)), *page, *size)
		if err != nil {
			return err
		}
		a.printUsers(p.Employees)
		fmt.Fprintf(a.out, "page %d of %d (%d users)\n", p.CurrentPage+1, p.TotalPages, p.TotalItems)

	case "assign-manager":
		user := fs.Int64("user", 0, "user id")
		manager := fs.Int64("manager", 0, "manager id")
		if err := parse(fs, rest); err != nil {
			return err
		}
		u, err := a.users.AssignManager(ctx, *user, *manager)
		if err != nil {
			return err
		}
		a.printUsers([]models.User{*u})

	case "remove-manager":
		user := fs.Int64("user", 0, "user id")
		if err := parse(fs, rest); err != nil {
			return err
		}
		u, err := a.users.RemoveManager(ctx, *user)
		if err != nil {
			return err
		}
		a.printUsers([]models.User{*u})

	case "team":
		manager := fs.Int64("manager", 0, "manager id")
		if err := parse(fs, rest); err != nil {
			return err
		}
		users, err := a.users.ListByManager(ctx, *manager)
		if err != nil {
			return err
		}
		a.printUsers(users)

	default:
		fmt.Fprintf(a.out, "unknown users command %q\n", sub)
		return errUsage
	}
	return nil
}

type userFlags struct {
	name, email, role, phone, tenant *string
	manager                          *int64
}

func bindUserInput(fs *flag.FlagSet) userFlags {
	return userFlags{
		name:    fs.String("name", "", "full name"),
		email:   fs.String("email", "", "email"),
		role:    fs.String("role", "", "EMPLOYEE, SUPERVISOR or MANAGER"),
		phone:   fs.String("phone", "", "phone number"),
		tenant:  fs.String("tenant", "", "tenant id"),
		manager: fs.Int64("manager", 0, "manager id"),
	}
}

// build keeps only the flags given on the command line.
func (f userFlags) build(fs *flag.FlagSet) models.UserInput {
	var in models.UserInput
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			in.Name = *f.name
		case "email":
			in.Email = *f.email
		case "role":
			in.Role = models.Role(strings.ToUpper(*f.role))
		case "phone":
			in.PhoneNumber = f.phone
		case "tenant":
			in.TenantID = f.tenant
		case "manager":
			in.ManagerID = f.manager
		}
	})
	return in
}
