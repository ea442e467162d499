package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vicosaas/vico-backend/client"
)

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("id non valido: " + arg)
	}
	return uint(id), nil
}

func newRistorantiCommand(deps Dependencies) *cobra.Command {
	ristoranti := &cobra.Command{
		Use:   "ristoranti",
		Short: "Elenca e amministra i ristoranti della piattaforma.",
	}
	ristoranti.AddCommand(newRistorantiListCommand(deps))
	ristoranti.AddCommand(newRistorantiShowCommand(deps))
	ristoranti.AddCommand(newRistorantiCreateCommand(deps))
	ristoranti.AddCommand(newRistorantiDeleteCommand(deps))
	return ristoranti
}

func newRistorantiListCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Elenca i ristoranti.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			restaurants, err := deps.API.ListRestaurants(cmd.Context())
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			printRow(w, "ID", "NOME", "INDIRIZZO", "SLOT", "ATTIVO")
			for _, r := range restaurants {
				printRow(w, r.ID, r.Nome, r.Indirizzo, r.SlotPrenotazione, r.IsActive)
			}
			return w.Flush()
		},
	}
}

func newRistorantiShowCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Mostra un ristorante.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			r, err := deps.API.GetRestaurant(cmd.Context(), id)
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			printRow(w, "Nome", r.Nome)
			printRow(w, "Indirizzo", r.Indirizzo)
			printRow(w, "Telefono", r.Telefono)
			printRow(w, "P. IVA", r.PIva)
			printRow(w, "Slot prenotazione", r.SlotPrenotazione, "min")
			printRow(w, "Attivo", r.IsActive)
			return w.Flush()
		},
	}
}

func newRistorantiCreateCommand(deps Dependencies) *cobra.Command {
	var in client.CreateRestaurant

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crea un ristorante (solo admin).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.Nome == "" {
				return errors.New("--nome e' obbligatorio")
			}
			r, err := deps.API.CreateRestaurant(cmd.Context(), in)
			if err != nil {
				return err
			}
			printf(cmd, "Ristorante %d creato: %s\n", r.ID, r.Nome)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Nome, "nome", "", "Nome del ristorante.")
	cmd.Flags().StringVar(&in.Indirizzo, "indirizzo", "", "Indirizzo.")
	cmd.Flags().StringVar(&in.Telefono, "telefono", "", "Telefono.")
	cmd.Flags().StringVar(&in.PIva, "p-iva", "", "Partita IVA.")
	cmd.Flags().IntVar(&in.SlotPrenotazione, "slot", 90, "Durata dello slot di prenotazione in minuti.")
	return cmd
}

func newRistorantiDeleteCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Elimina un ristorante (solo admin).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := deps.API.DeleteRestaurant(cmd.Context(), id); err != nil {
				return err
			}
			printf(cmd, "Ristorante %d eliminato.\n", id)
			return nil
		},
	}
}
