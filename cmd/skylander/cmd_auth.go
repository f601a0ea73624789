package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"skylander/internal/api"
	"skylander/internal/session"
	"skylander/internal/validate"
)

var (
	loginEmail    string
	loginPassword string
	loginAsAdmin  bool

	regName     string
	regEmail    string
	regPhone    string
	regPassword string
)

// loginCmd authenticates and persists the session.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if msg := validate.Email(loginEmail); msg != "" {
			return fmt.Errorf("email: %s", msg)
		}
		if msg := validate.Password(loginPassword); msg != "" {
			return fmt.Errorf("password: %s", msg)
		}

		client, store, err := buildClient()
		if err != nil {
			return err
		}
		role := "user"
		if loginAsAdmin {
			role = "admin"
		}
		creds, err := client.Login(context.Background(), loginEmail, loginPassword, role)
		if err != nil {
			return err
		}
		if err := store.Save(creds.User, creds.Token); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		logger.Info("logged in", zap.String("email", creds.User.Email), zap.String("role", creds.User.Role))
		fmt.Printf("Logged in as %s (%s)\n", creds.User.Name, creds.User.Email)
		return nil
	},
}

// registerCmd creates an account and logs it in.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		for field, msg := range map[string]string{
			"name":     validate.Name(regName),
			"email":    validate.Email(regEmail),
			"phone":    validate.Phone(regPhone),
			"password": validate.Password(regPassword),
		} {
			if msg != "" {
				return fmt.Errorf("%s: %s", field, msg)
			}
		}

		client, store, err := buildClient()
		if err != nil {
			return err
		}
		ctx := context.Background()
		if _, err := client.Register(ctx, regName, regEmail, regPassword, regPhone); err != nil {
			return err
		}
		creds, err := client.Login(ctx, regEmail, regPassword, "user")
		if err != nil {
			return fmt.Errorf("registered, but login failed: %w", err)
		}
		if err := store.Save(creds.User, creds.Token); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		fmt.Printf("Welcome to SkyLander, %s\n", creds.User.Name)
		return nil
	},
}

// logoutCmd clears the stored session.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := session.DefaultFileStore()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

// whoamiCmd prints the cached identity.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s>  phone %s  role %s\n", sess.User.Name, sess.User.Email, sess.User.PhoneNo, sess.User.Role)
		return nil
	},
}

// buildClient wires the API client and session store from configuration.
func buildClient() (*api.Client, session.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := session.DefaultFileStore()
	if err != nil {
		return nil, nil, err
	}
	return api.New(cfg.APIBaseURL, api.WithLogger(logger)), store, nil
}

// requireSession loads the session or fails with a login hint.
func requireSession() (*session.Session, error) {
	store, err := session.DefaultFileStore()
	if err != nil {
		return nil, err
	}
	sess, err := store.Load()
	if err == session.ErrNoSession {
		return nil, fmt.Errorf("not logged in; run 'skylander login' first")
	}
	return sess, err
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	loginCmd.Flags().BoolVar(&loginAsAdmin, "admin", false, "log in with the admin role")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&regName, "name", "", "full name")
	registerCmd.Flags().StringVar(&regEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&regPhone, "phone", "", "phone number (10-15 digits)")
	registerCmd.Flags().StringVar(&regPassword, "password", "", "account password")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("phone")
	_ = registerCmd.MarkFlagRequired("password")
}
