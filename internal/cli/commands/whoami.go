package commands

import (
	"context"

	"HabitAuth/internal/config"
)

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Show the current authentication state" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, err := authService(ctx, cfg)
	if err != nil {
		return err
	}
	// ErrNotLoggedIn здесь не ошибка: печатаем anonymous
	st, _ := svc.CurrentUser()
	printState(st)
	return nil
}

func init() { RegisterCmd(whoamiCmd{}) }
