package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/labelsight/labelsight/app/controllers"
	"github.com/labelsight/labelsight/app/services"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage employee accounts",
}

var (
	userRole    string
	userKeyword string
	userPage    int
	userPerPage int
)

// labelsight users list — one page of the filtered accounts.
var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employee accounts, filtered by role and keyword",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctrl := controllers.NewUserListController(cmd.Context(), a.users,
			controllers.WithPerPage(userPerPage),
			controllers.WithPage(userPage),
			controllers.WithFilter(strings.ToUpper(userRole)),
			controllers.WithKeyword(userKeyword))
		defer ctrl.Close()

		if err := ctrl.Fetch(cmd.Context()); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tEMAIL\tROLE")
		for _, u := range ctrl.Items() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.EmployeeCode, u.Name, u.Email, u.Role)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		stats := ctrl.Stats()
		fmt.Printf("\n%d of %d accounts (page %d) — %d admins, %d employees on this page\n",
			stats.Total, stats.TotalFromAPI, ctrl.Page(), stats.Administrators, stats.Employees)
		return nil
	},
}

var (
	newUserEmail  string
	newUserCode   string
	newUserName   string
	newUserRole   string
	newUserAvatar string
)

// labelsight users create — register an account keyed by email.
var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an employee account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		avatarURL, err := uploadImage(cmd.Context(), a, newUserAvatar, services.UploadTypeAvatars)
		if err != nil {
			return err
		}

		u, err := a.users.Create(cmd.Context(), services.UserCreateInput{
			Email:        newUserEmail,
			EmployeeCode: newUserCode,
			Name:         newUserName,
			Role:         strings.ToUpper(newUserRole),
			AvatarURL:    avatarURL,
		})
		if err != nil {
			return formatErr(err)
		}

		fmt.Printf("Created account %s <%s>.\n", u.Name, u.Email)
		return nil
	},
}

// labelsight users update — replace an account's mutable fields.
var usersUpdateCmd = &cobra.Command{
	Use:   "update <email>",
	Short: "Update an account's name, role or avatar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		avatarURL, err := uploadImage(cmd.Context(), a, newUserAvatar, services.UploadTypeAvatars)
		if err != nil {
			return err
		}

		u, err := a.users.Update(cmd.Context(), args[0], services.UserUpdateInput{
			Name:      newUserName,
			Role:      strings.ToUpper(newUserRole),
			AvatarURL: avatarURL,
		})
		if err != nil {
			return formatErr(err)
		}

		fmt.Printf("Updated account %s.\n", u.Email)
		return nil
	},
}

// labelsight users delete — remove by email.
var usersDeleteCmd = &cobra.Command{
	Use:   "delete <email>",
	Short: "Delete an employee account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.users.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted account %s.\n", args[0])
		return nil
	},
}

func init() {
	usersListCmd.Flags().StringVar(&userRole, "role", "", "role filter (ADMIN or EMPLOYEE)")
	usersListCmd.Flags().StringVar(&userKeyword, "keyword", "", "free-text search")
	usersListCmd.Flags().IntVar(&userPage, "page", 1, "1-based page")
	usersListCmd.Flags().IntVar(&userPerPage, "per-page", controllers.DefaultPerPage, "page size")

	for _, cmd := range []*cobra.Command{usersCreateCmd, usersUpdateCmd} {
		cmd.Flags().StringVar(&newUserName, "name", "", "display name")
		cmd.Flags().StringVar(&newUserRole, "role", "", "ADMIN or EMPLOYEE")
		cmd.Flags().StringVar(&newUserAvatar, "avatar", "", "path to an avatar image")
	}
	usersCreateCmd.Flags().StringVar(&newUserEmail, "email", "", "account email (immutable)")
	usersCreateCmd.Flags().StringVar(&newUserCode, "employee-code", "", "employee code")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	usersCmd.AddCommand(usersDeleteCmd)
}
