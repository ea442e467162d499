package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vicosaas/vico-backend/client"
)

func newSaleCommand(deps Dependencies) *cobra.Command {
	sale := &cobra.Command{
		Use:   "sale",
		Short: "Sale del ristorante e i loro tavoli.",
	}
	sale.AddCommand(newSaleListCommand(deps))
	sale.AddCommand(newSaleAddCommand(deps))
	sale.AddCommand(newSaleDeleteCommand(deps))
	sale.AddCommand(newSaleToggleCommand(deps))
	return sale
}

func newSaleListCommand(deps Dependencies) *cobra.Command {
	var ristoranteID uint

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Elenca le sale con i tavoli.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ristoranteID == 0 {
				return errors.New("--ristorante e' obbligatorio")
			}
			rooms, err := deps.API.ListRooms(cmd.Context(), ristoranteID)
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			printRow(w, "SALA", "NOME", "CAPIENZA", "ATTIVA", "TAVOLI")
			for _, room := range rooms {
				printRow(w, room.ID, room.Nome, room.Capienza, room.IsActive, len(room.Tavoli))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			for _, room := range rooms {
				for _, t := range room.Tavoli {
					printf(cmd, "  sala %d | tavolo %d (%s): %d posti, %s\n",
						room.ID, t.ID, t.Numero, t.Posti, t.Stato)
				}
			}
			return nil
		},
	}
	cmd.Flags().UintVarP(&ristoranteID, "ristorante", "r", 0, "ID del ristorante.")
	return cmd
}

func newSaleAddCommand(deps Dependencies) *cobra.Command {
	var ristoranteID uint
	var in client.RoomInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Crea una sala.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ristoranteID == 0 {
				return errors.New("--ristorante e' obbligatorio")
			}
			room, err := deps.API.CreateRoom(cmd.Context(), ristoranteID, in)
			if err != nil {
				return err
			}
			printf(cmd, "Sala %d creata: %s\n", room.ID, room.Nome)
			return nil
		},
	}
	cmd.Flags().UintVarP(&ristoranteID, "ristorante", "r", 0, "ID del ristorante.")
	cmd.Flags().StringVar(&in.Nome, "nome", "", "Nome della sala.")
	cmd.Flags().StringVar(&in.Descrizione, "descrizione", "", "Descrizione.")
	cmd.Flags().IntVar(&in.Capienza, "capienza", 0, "Capienza massima.")
	return cmd
}

func newSaleDeleteCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <sala_id>",
		Short: "Elimina una sala (mai l'ultima del ristorante).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := deps.API.DeleteRoom(cmd.Context(), id); err != nil {
				if errors.Is(err, client.ErrConflict) {
					return errors.New("impossibile eliminare l'ultima sala del ristorante")
				}
				return err
			}
			printf(cmd, "Sala %d eliminata.\n", id)
			return nil
		},
	}
}

func newSaleToggleCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <sala_id>",
		Short: "Attiva o disattiva una sala.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			room, err := deps.API.ToggleRoomActive(cmd.Context(), id)
			if err != nil {
				return err
			}
			stato := "disattivata"
			if room.IsActive {
				stato = "attivata"
			}
			printf(cmd, "Sala %d %s.\n", room.ID, stato)
			return nil
		},
	}
}

func newTavoliCommand(deps Dependencies) *cobra.Command {
	tavoli := &cobra.Command{
		Use:   "tavoli",
		Short: "Tavoli delle sale.",
	}
	tavoli.AddCommand(newTavoliAddCommand(deps))
	tavoli.AddCommand(newTavoliStatoCommand(deps))
	tavoli.AddCommand(newTavoliDeleteCommand(deps))
	return tavoli
}

func newTavoliAddCommand(deps Dependencies) *cobra.Command {
	var salaID uint
	var in client.TableInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Aggiunge un tavolo a una sala.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if salaID == 0 {
				return errors.New("--sala e' obbligatorio")
			}
			table, err := deps.API.CreateTable(cmd.Context(), salaID, in)
			if err != nil {
				return err
			}
			printf(cmd, "Tavolo %d (%s) aggiunto alla sala %d.\n", table.ID, table.Numero, table.SalaID)
			return nil
		},
	}
	cmd.Flags().UintVarP(&salaID, "sala", "s", 0, "ID della sala.")
	cmd.Flags().StringVar(&in.Numero, "numero", "", "Numero o nome del tavolo.")
	cmd.Flags().IntVar(&in.Posti, "posti", 2, "Numero di posti.")
	return cmd
}

func newTavoliStatoCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "stato <tavolo_id> <available|occupied|reserved>",
		Short: "Cambia lo stato di un tavolo.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			table, err := deps.API.UpdateTableStatus(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			printf(cmd, "Tavolo %d ora %s.\n", table.ID, table.Stato)
			return nil
		},
	}
}

func newTavoliDeleteCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <tavolo_id>",
		Short: "Elimina un tavolo.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := deps.API.DeleteTable(cmd.Context(), id); err != nil {
				return err
			}
			printf(cmd, "Tavolo %d eliminato.\n", id)
			return nil
		},
	}
}
