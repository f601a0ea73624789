package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"skylander/internal/validate"
)

var (
	profName  string
	profEmail string
	profPhone string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit the account profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}
		fmt.Printf("Name:  %s\nEmail: %s\nPhone: %s\nRole:  %s\n",
			sess.User.Name, sess.User.Email, sess.User.PhoneNo, sess.User.Role)
		return nil
	},
}

// profileUpdateCmd edits only the fields passed as flags.
var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}

		user := sess.User
		if cmd.Flags().Changed("name") {
			user.Name = profName
		}
		if cmd.Flags().Changed("email") {
			user.Email = profEmail
		}
		if cmd.Flags().Changed("phone") {
			user.PhoneNo = profPhone
		}
		for field, msg := range map[string]string{
			"name":  validate.Name(user.Name),
			"email": validate.Email(user.Email),
			"phone": validate.Phone(user.PhoneNo),
		} {
			if msg != "" {
				return fmt.Errorf("%s: %s", field, msg)
			}
		}

		client, store, err := buildClient()
		if err != nil {
			return err
		}
		message, err := client.UpdateProfile(context.Background(), user)
		if err != nil {
			return err
		}
		if err := store.Save(user, sess.Token); err != nil {
			return fmt.Errorf("profile updated on the server, but refreshing the local session failed: %w", err)
		}
		if message == "" {
			message = "Profile updated."
		}
		fmt.Println(message)
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profName, "name", "", "new display name")
	profileUpdateCmd.Flags().StringVar(&profEmail, "email", "", "new email address")
	profileUpdateCmd.Flags().StringVar(&profPhone, "phone", "", "new phone number")
	profileCmd.AddCommand(profileUpdateCmd)
}
