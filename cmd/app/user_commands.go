package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/ativoshub/ativos/cmd/app/commands"
	"github.com/ativoshub/ativos/internal/app"
	"github.com/ativoshub/ativos/internal/config"
)

func getUserCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Create a new user account",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Username for the new account",
				},
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Password for the new account",
				},
				&cli.StringFlag{
					Name:     "secret-question",
					Aliases:  []string{"q"},
					Required: true,
					Usage:    "Secret question used for password recovery",
				},
				&cli.StringFlag{
					Name:     "secret-answer",
					Aliases:  []string{"a"},
					Required: true,
					Usage:    "Answer to the secret question",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Value:   "viewer",
					Usage:   "Role for the new account: 'viewer', 'editor' or 'admin'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateUser(
					ctx,
					userUseCase,
					container.Logger(),
					cmd.String("username"),
					cmd.String("password"),
					cmd.String("secret-question"),
					cmd.String("secret-answer"),
					cmd.String("role"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "update-user-role",
			Usage: "Change the role of an existing user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Username of the account to update",
				},
				&cli.StringFlag{
					Name:     "role",
					Aliases:  []string{"r"},
					Required: true,
					Usage:    "New role: 'viewer', 'editor' or 'admin'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				userRepo, err := container.UserRepository()
				if err != nil {
					return err
				}

				return commands.RunUpdateUserRole(
					ctx,
					userUseCase,
					userRepo,
					container.Logger(),
					cmd.String("username"),
					cmd.String("role"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
