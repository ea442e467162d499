package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/vicosaas/vico-backend/client"
	"github.com/vicosaas/vico-backend/client/agenda"
)

var giorniSettimana = [7]string{"Lun", "Mar", "Mer", "Gio", "Ven", "Sab", "Dom"}

func newPrenotazioniCommand(deps Dependencies) *cobra.Command {
	prenotazioni := &cobra.Command{
		Use:   "prenotazioni",
		Short: "Agenda e gestione delle prenotazioni.",
	}
	prenotazioni.AddCommand(newPrenotazioniGiornoCommand(deps))
	prenotazioni.AddCommand(newPrenotazioniAddCommand(deps))
	prenotazioni.AddCommand(newPrenotazioniCompleteCommand(deps))
	prenotazioni.AddCommand(newPrenotazioniDeleteCommand(deps))
	return prenotazioni
}

func newPrenotazioniGiornoCommand(deps Dependencies) *cobra.Command {
	var ristoranteID uint
	var data string
	var offset int

	cmd := &cobra.Command{
		Use:   "giorno",
		Short: "Vista giornaliera: striscia settimanale e prenotazioni del giorno.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			board := agenda.NewBoard(ristoranteID)
			if data != "" {
				day, err := time.ParseInLocation("2006-01-02", data, time.Local)
				if err != nil {
					return errors.New("data non valida, formato atteso YYYY-MM-DD")
				}
				board.SetDay(day)
			}
			board.ChangeDay(offset)

			if err := board.Load(cmd.Context(), deps.API); err != nil {
				return err
			}

			for _, day := range board.Strip() {
				marker := " "
				if day.IsSelected {
					marker = ">"
				}
				todayMark := ""
				if day.IsToday {
					todayMark = " (oggi)"
				}
				printf(cmd, "%s %s %s%s\n", marker,
					giorniSettimana[day.Weekday], day.Date.Format("02/01"), todayMark)
			}

			entries := board.Entries()
			if len(entries) == 0 {
				printf(cmd, "\nNessuna prenotazione per il giorno selezionato.\n")
				return nil
			}

			printf(cmd, "\n")
			w := newTable(cmd.OutOrStdout())
			printRow(w, "ID", "ORA", "CLIENTE", "COPERTI", "TAVOLO", "STATO")
			for _, e := range entries {
				printRow(w, e.ID, e.DataOra.Format("15:04"), e.NomeCliente,
					e.NumeroPersone, e.Tavolo, e.Stato)
			}
			return w.Flush()
		},
	}
	cmd.Flags().UintVarP(&ristoranteID, "ristorante", "r", 0, "ID del ristorante.")
	cmd.Flags().StringVar(&data, "data", "", "Giorno da mostrare (YYYY-MM-DD, default oggi).")
	cmd.Flags().IntVar(&offset, "sposta", 0, "Sposta il giorno selezionato di N giorni.")
	return cmd
}

func newPrenotazioniAddCommand(deps Dependencies) *cobra.Command {
	var in client.CreateReservation

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Crea una prenotazione e stampa il link di gestione.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.NomeCliente == "" || in.TelefonoCliente == "" {
				return errors.New("--nome e --telefono sono obbligatori")
			}
			created, err := deps.API.CreateReservation(cmd.Context(), in)
			if err != nil {
				return err
			}
			p := created.Prenotazione
			printf(cmd, "Prenotazione %d per %s, %d coperti il %s.\n",
				p.ID, p.NomeCliente, p.NumeroPersone, p.DataOra.Format("02/01/2006 15:04"))
			printf(cmd, "Token di gestione: %s\n", created.ManageToken)
			return nil
		},
	}
	cmd.Flags().UintVarP(&in.RistoranteID, "ristorante", "r", 0, "ID del ristorante.")
	cmd.Flags().StringVar(&in.NomeCliente, "nome", "", "Nome del cliente.")
	cmd.Flags().StringVar(&in.EmailCliente, "email", "", "Email del cliente.")
	cmd.Flags().StringVar(&in.TelefonoCliente, "telefono", "", "Telefono del cliente.")
	cmd.Flags().StringVar(&in.DataOra, "data-ora", "", "Data e ora (RFC 3339).")
	cmd.Flags().IntVar(&in.NumeroPersone, "persone", 2, "Numero di coperti.")
	cmd.Flags().StringVar(&in.Note, "note", "", "Note.")
	return cmd
}

func newPrenotazioniCompleteCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Segna la prenotazione come completata.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := deps.API.CompleteReservation(cmd.Context(), id)
			if err != nil {
				return err
			}
			printf(cmd, "Prenotazione %d %s.\n", p.ID, p.Stato)
			return nil
		},
	}
}

func newPrenotazioniDeleteCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Elimina una prenotazione.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := deps.API.DeleteReservation(cmd.Context(), id); err != nil {
				return err
			}
			printf(cmd, "Prenotazione %d eliminata.\n", id)
			return nil
		},
	}
}
