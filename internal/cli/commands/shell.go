package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"HabitAuth/internal/config"
)

type shellCmd struct{}

func (shellCmd) Name() string        { return "shell" }
func (shellCmd) Description() string { return "Interactive session (state lives until exit)" }
func (shellCmd) Usage() string       { return "shell" }

// Run читает команды построчно и выполняет их в той же сессии.
func (shellCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	sc := bufio.NewScanner(In)
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(Out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(Out)
			return sc.Err()
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "exit", "quit":
			return nil
		case "shell":
			fmt.Fprintln(Out, "already in shell")
			continue
		}
		run(ctx, cfg, fields)
	}
}

func init() { RegisterCmd(shellCmd{}) }
