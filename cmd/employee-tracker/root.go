package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"employee-tracker/internal/config"
	"employee-tracker/internal/db"
	"employee-tracker/internal/logging"
	"employee-tracker/internal/prompt"
	"employee-tracker/internal/render"
	"employee-tracker/internal/service"
	"employee-tracker/internal/tracker"
)

// configFlags maps config keys to the flags that override them.
var configFlags = map[string]string{
	config.KeyUser:     "db-user",
	config.KeyHost:     "db-host",
	config.KeyName:     "db-name",
	config.KeyPassword: "db-password",
	config.KeyPort:     "db-port",
	config.KeySSLMode:  "db-sslmode",
	config.KeyLogLevel: "log-level",
}

type options struct {
	envFile string
	plain   bool
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "employee-tracker",
		Short: "Manage departments, roles, and employees from the terminal",
		Long: `employee-tracker is a menu-driven tool for viewing and adding the
departments, roles, and employees kept in a PostgreSQL database.

Connection settings come from flags, then DB_USER, DB_HOST, DB_NAME,
DB_PASSWORD and DB_PORT (optionally loaded from a .env file), then defaults.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			explicitEnv := cmd.Flags().Changed("env-file")
			return run(cmd.Context(), v, opts, explicitEnv, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "file of KEY=value lines loaded into the environment")
	flags.BoolVar(&opts.plain, "plain", false, "use numbered line prompts even on a terminal")
	flags.String("db-user", "", "database user (DB_USER)")
	flags.String("db-host", "", "database host (DB_HOST)")
	flags.String("db-name", "", "database name (DB_NAME)")
	flags.String("db-password", "", "database password (DB_PASSWORD)")
	flags.Int("db-port", 0, "database port (DB_PORT)")
	flags.String("db-sslmode", "", "libpq sslmode (DB_SSLMODE)")
	flags.String("log-level", "", "operator log level: debug, info, warn, error (LOG_LEVEL)")

	for key, flag := range configFlags {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(flag)))
	}

	return cmd
}

func run(ctx context.Context, v *viper.Viper, opts *options, explicitEnv bool, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := loadEnvFile(opts.envFile, explicitEnv); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	logger := logging.New(stderr, v.GetString(config.KeyLogLevel))
	if err != nil {
		logger.Error().Err(err).Msg("Configuration error")
		return err
	}

	database, err := db.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Database connection error")
		return err
	}
	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Name).
		Msg("Connected to PostgreSQL database")

	loop := tracker.New(
		service.NewStore(database),
		newPrompter(stdin, stdout, opts.plain),
		render.NewPrinter(stdout),
		logger,
	)
	return loop.Run(ctx)
}

// loadEnvFile reads path into the environment without overriding
// variables already set. A missing default file is not an error.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

func newPrompter(in io.Reader, out io.Writer, plain bool) prompt.Prompter {
	if !plain && isTerminal(in) && isTerminal(out) {
		return prompt.NewTerminal(in, out)
	}
	return prompt.NewConsole(in, out)
}

func isTerminal(stream interface{}) bool {
	f, ok := stream.(interface{ Fd() uintptr })
	return ok && isatty.IsTerminal(f.Fd())
}
