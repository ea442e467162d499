package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand costruisce l'albero completo dei comandi.
func NewRootCommand(deps Dependencies) *cobra.Command {
	version := deps.Version
	if version == "" {
		version = "dev"
	}

	root := &cobra.Command{
		Use:           "vicoctl",
		Short:         "Gestisci ristoranti, sale, menu e prenotazioni VICO dal terminale.",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			showVersion, _ := cmd.Flags().GetBool("version")
			if showVersion {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
				return errVersionShown
			}
			return cmd.Help()
		},
	}
	root.Flags().BoolP("version", "v", false, "Mostra la versione ed esce.")
	root.SetHelpCommand(&cobra.Command{Hidden: true})

	root.AddCommand(newAuthCommand(deps))
	root.AddCommand(newRistorantiCommand(deps))
	root.AddCommand(newSaleCommand(deps))
	root.AddCommand(newTavoliCommand(deps))
	root.AddCommand(newPrenotazioniCommand(deps))
	root.AddCommand(newGestisciCommand(deps))
	root.AddCommand(newMenuCommand(deps))
	root.AddCommand(newOrariCommand(deps))
	root.AddCommand(newDashboardCommand(deps))

	return root
}
