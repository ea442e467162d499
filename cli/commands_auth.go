package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newAuthCommand(deps Dependencies) *cobra.Command {
	auth := &cobra.Command{
		Use:   "auth",
		Short: "Login, logout e stato della sessione.",
	}
	auth.AddCommand(newAuthLoginCommand(deps))
	auth.AddCommand(newAuthWhoamiCommand(deps))
	auth.AddCommand(newAuthLogoutCommand(deps))
	return auth
}

func newAuthLoginCommand(deps Dependencies) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Autentica e salva il token nella sessione locale.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if username == "" || password == "" {
				return errors.New("--username e --password sono obbligatori")
			}
			resp, err := deps.API.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			printf(cmd, "Accesso eseguito con ruolo %s.\n", resp.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Nome utente o email.")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password.")
	return cmd
}

func newAuthWhoamiCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Mostra il profilo dell'utente autenticato.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := deps.API.Me(cmd.Context())
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			printRow(w, "ID", "NOME", "EMAIL", "RUOLO")
			printRow(w, profile.ID, profile.Name, profile.Email, profile.Role)
			return w.Flush()
		},
	}
}

func newAuthLogoutCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Invalida il token e azzera la sessione locale.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.API.Logout(cmd.Context()); err != nil {
				return err
			}
			printf(cmd, "Sessione chiusa.\n")
			return nil
		},
	}
}
