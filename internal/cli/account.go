package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	authEmail    string
	authPassword string
	authName     string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			resp, err := a.auth.SignUp(ctx, authEmail, authPassword, optionalString(authName))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created account for %s (%s)\n", resp.User.DisplayName(), resp.User.ID)
			return nil
		})
	},
}

var signinCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in with email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			resp, err := a.auth.SignIn(ctx, authEmail, authPassword)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", resp.User.DisplayName())
			return nil
		})
	},
}

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := a.auth.SignOut(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			user := a.auth.CurrentUser(ctx)
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\nEmail: %s\nID: %s\n", user.DisplayName(), user.Email, user.ID)
			if user.CurrentWeight != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg\n", *user.CurrentWeight)
			}
			if user.TargetWeight != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Target weight: %.1f kg\n", *user.TargetWeight)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(signupCmd, signinCmd, signoutCmd, whoamiCmd)

	for _, c := range []*cobra.Command{signupCmd, signinCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "Account email")
		c.Flags().StringVar(&authPassword, "password", "", "Account password")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
	signupCmd.Flags().StringVar(&authName, "name", "", "Display name")
}
