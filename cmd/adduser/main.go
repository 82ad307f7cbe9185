// Command adduser registers a buyer or seller account in the credential file
// without going through the Kisan card gate.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"AgriMind_FarmAssistant/internal/auth"
	"AgriMind_FarmAssistant/internal/models"
	"AgriMind_FarmAssistant/internal/storage"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultUsersFile = "users.json"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		username  string
		roleName  string
		password  string
		usersFile string
		hasher    string
	)

	cmd := &cobra.Command{
		Use:           "adduser --user <username> --role <buyer|seller>",
		Short:         "Add an account to the credential file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(username) == "" {
				fmt.Fprintln(stdout, "Usage: adduser --user <username> --role <buyer|seller> [--password <password>] [--users-file <path>]")
				return fmt.Errorf("missing required flags: user")
			}
			role, err := models.ParseRole(roleName)
			if err != nil {
				return err
			}

			if password == "" {
				fmt.Fprint(stdout, "Password: ")
				password, err = readPassword(stdin)
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				fmt.Fprintln(stdout)
			}
			if strings.TrimSpace(password) == "" {
				return fmt.Errorf("password cannot be empty")
			}

			// 플래그를 주지 않았으면 서버와 같은 환경변수를 따른다
			if !cmd.Flags().Changed("users-file") {
				if path := os.Getenv("USERS_FILE"); path != "" {
					usersFile = path
				}
			}
			if !cmd.Flags().Changed("hasher") {
				if name := os.Getenv("PASSWORD_HASHER"); name != "" {
					hasher = strings.ToLower(name)
				}
			}

			store := storage.NewCredentialStore(usersFile, auth.NewPasswordHasher(hasher), nil)
			if err := store.Register(username, password, role); err != nil {
				if errors.Is(err, storage.ErrUsernameExists) {
					return fmt.Errorf("user %s already exists", username)
				}
				return fmt.Errorf("failed to save user: %w", err)
			}

			fmt.Fprintf(stdout, "User %s (%s) created successfully in %s\n", username, role, usersFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "Username")
	cmd.Flags().StringVar(&roleName, "role", string(models.RoleBuyer), "Role: buyer or seller")
	cmd.Flags().StringVar(&password, "password", "", "Password (optional, will prompt if omitted)")
	cmd.Flags().StringVar(&usersFile, "users-file", defaultUsersFile, "Path to the credential file")
	cmd.Flags().StringVar(&hasher, "hasher", "sha256", "Password hasher: sha256 or bcrypt")

	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// 파이프/테스트 입력
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
