package commands

import (
	"context"
	"fmt"

	"HabitAuth/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account on the server" }
func (registerCmd) Usage() string       { return "register <username> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	svc, err := authService(ctx, cfg)
	if err != nil {
		return err
	}
	if err := svc.Register(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "User %s registered, now run: login %s <password>\n", args[0], args[0])
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
