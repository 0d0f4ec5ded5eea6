package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"farmlink/config"
	"farmlink/internal/infra/auth"
	logs "farmlink/internal/infra/log"
	"farmlink/internal/infra/persistence/postgres"
	"farmlink/internal/usecase"
	"farmlink/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported subcommands:
// - createsuperuser: Create a verified administrator
// - verify:          Set or clear the verified flag of an account
// - migrate:         Create or update the database schema

const adminPasswordEnv = "FARMLINK_ADMIN_PASSWORD"

func main() {
	createCmd := flag.NewFlagSet("createsuperuser", flag.ExitOnError)
	createEmail := createCmd.String("email", "", "Administrator email")
	createPassword := createCmd.String("password", "", "Administrator password (defaults to $"+adminPasswordEnv+")")

	verifyCmd := flag.NewFlagSet("verify", flag.ExitOnError)
	verifyEmail := verifyCmd.String("email", "", "Email of the account to verify")
	verifyRevoke := verifyCmd.Bool("revoke", false, "Clear the verified flag instead of setting it")

	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var err error
	switch os.Args[1] {
	case createCmd.Name():
		_ = createCmd.Parse(os.Args[2:])
		err = runCreateSuperuser(ctx, *createEmail, *createPassword)
	case verifyCmd.Name():
		_ = verifyCmd.Parse(os.Args[2:])
		err = runVerify(ctx, *verifyEmail, !*verifyRevoke)
	case migrateCmd.Name():
		_ = migrateCmd.Parse(os.Args[2:])
		err = runMigrate(ctx)
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: admin <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  createsuperuser -email <email> [-password <password>]")
	fmt.Println("  verify -email <email> [-revoke]")
	fmt.Println("  migrate")
}

type adminDeps struct {
	Accounts usecase.AccountUsecase
	DB       *gorm.DB
}

// withApp starts the persistence and account wiring of the server, runs fn, then stops it.
func withApp(ctx context.Context, fn func(deps adminDeps) error) error {
	var deps adminDeps

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewAccountRepository,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewAccountService,
		),
		fx.Populate(&deps.Accounts, &deps.DB),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() { _ = app.Stop(context.Background()) }()

	return fn(deps)
}

func runCreateSuperuser(ctx context.Context, email, password string) error {
	if email == "" {
		return errors.New("-email is required")
	}
	if password == "" {
		password = os.Getenv(adminPasswordEnv)
	}
	if password == "" {
		return errors.New("-password or $" + adminPasswordEnv + " is required")
	}

	return withApp(ctx, func(deps adminDeps) error {
		account, err := deps.Accounts.CreateAdmin(ctx, &usecase.CreateAdminInput{Email: email, Password: password})
		if err != nil {
			return err
		}
		fmt.Printf("Created administrator %s (%s)\n", account.Email, account.ID)

		return nil
	})
}

func runVerify(ctx context.Context, email string, verified bool) error {
	if email == "" {
		return errors.New("-email is required")
	}

	return withApp(ctx, func(deps adminDeps) error {
		account, err := deps.Accounts.SetVerified(ctx, email, verified)
		if err != nil {
			return err
		}
		fmt.Printf("Account %s verified=%t\n", account.Email, account.Verified)

		return nil
	})
}

func runMigrate(ctx context.Context) error {
	return withApp(ctx, func(deps adminDeps) error {
		if err := postgres.Migrate(deps.DB.WithContext(ctx)); err != nil {
			return err
		}
		fmt.Println("Schema is up to date")

		return nil
	})
}
