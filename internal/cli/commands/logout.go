package commands

import (
	"context"

	"HabitAuth/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the current user" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, err := authService(ctx, cfg)
	if err != nil {
		return err
	}
	svc.Logout()
	st, _ := svc.CurrentUser()
	printState(st)
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
