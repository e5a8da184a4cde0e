package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/labelsight/labelsight/pkg/credentials"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the stored session",
}

var (
	loginAccessToken  string
	loginRefreshToken string
)

// labelsight auth login — store tokens, then resolve /me.
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store backend tokens and fetch the account behind them",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.store.Save(credentials.Credentials{
			AccessToken:  loginAccessToken,
			RefreshToken: loginRefreshToken,
		}); err != nil {
			return err
		}

		user, err := a.users.Me(cmd.Context())
		if err != nil {
			// Token rejected: do not keep it around.
			_ = a.store.Clear()
			return err
		}
		if err := a.store.SetCurrentUser(user); err != nil {
			return err
		}

		fmt.Printf("Signed in as %s <%s> (%s)\n", user.Name, user.Email, user.Role)
		return nil
	},
}

// labelsight auth logout — clear the credential file.
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.store.Clear(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

// labelsight auth whoami — print the cached user and token expiry.
var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the cached account and token expiry",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		user := a.store.CurrentUser()
		if user == nil {
			fmt.Println("Not signed in.")
			return nil
		}

		fmt.Printf("%s <%s>\nrole: %s\nemployee code: %s\n", user.Name, user.Email, user.Role, user.EmployeeCode)

		if claims, err := a.store.TokenClaims(); err == nil {
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				fmt.Printf("token expires: %s\n", exp.Format(time.RFC1123))
			}
		}
		return nil
	},
}

func init() {
	authLoginCmd.Flags().StringVar(&loginAccessToken, "access-token", "", "bearer access token (required)")
	authLoginCmd.Flags().StringVar(&loginRefreshToken, "refresh-token", "", "refresh token")
	_ = authLoginCmd.MarkFlagRequired("access-token")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authWhoamiCmd)
}
