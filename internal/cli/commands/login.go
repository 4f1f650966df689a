package commands

import (
	"context"
	"fmt"

	"HabitAuth/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Check credentials and log in" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	svc, err := authService(ctx, cfg)
	if err != nil {
		return err
	}
	if err := svc.Login(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged in successfully")
	st, _ := svc.CurrentUser()
	printState(st)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
