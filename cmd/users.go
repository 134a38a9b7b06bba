package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/metlab/inventory/internal/validate"
	"github.com/metlab/inventory/types"
	"github.com/spf13/cobra"
)

var (
	userUsername string
	userPassword string
	userEmail    string
	userRole     string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		if err := validate.Username(userUsername); err != nil {
			return err
		}
		if err := validate.Password(userPassword, a.Config.Auth.MinPasswordLength); err != nil {
			return err
		}

		var email *string
		if e := strings.TrimSpace(userEmail); e != "" {
			email = &e
		}

		ok, err := a.Users.CreateUser(cmd.Context(), types.NewUser{
			Username: strings.TrimSpace(userUsername),
			Password: userPassword,
			Email:    email,
			Role:     validate.Role(userRole),
		})
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("username %q already exists", userUsername)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "User '%s' created successfully!\n", strings.TrimSpace(userUsername))
		return nil
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		users, err := a.Users.ListUsers(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "ID | Username | Email | Role | Created At")
		for _, u := range users {
			email := "N/A"
			if u.Email != nil && *u.Email != "" {
				email = *u.Email
			}
			fmt.Fprintf(out, "%d | %s | %s | %s | %s\n", u.ID, u.Username, email, u.Role, u.CreatedAt)
		}
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.New("invalid user id")
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		msg, err := a.Users.DeleteUser(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersAddCmd, usersListCmd, usersDeleteCmd)

	usersAddCmd.Flags().StringVarP(&userUsername, "username", "u", "", "login name")
	usersAddCmd.Flags().StringVarP(&userPassword, "password", "p", "", "password")
	usersAddCmd.Flags().StringVar(&userEmail, "email", "", "optional email address")
	usersAddCmd.Flags().StringVar(&userRole, "role", types.RoleUser, "role: user or admin")
	_ = usersAddCmd.MarkFlagRequired("username")
	_ = usersAddCmd.MarkFlagRequired("password")
}
