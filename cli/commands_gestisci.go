package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vicosaas/vico-backend/client"
	"github.com/vicosaas/vico-backend/client/selfservice"
)

// gestisci e' il percorso self-service: il cliente opera sulla propria
// prenotazione con il solo token del link ricevuto, senza login.
func newGestisciCommand(deps Dependencies) *cobra.Command {
	gestisci := &cobra.Command{
		Use:   "gestisci",
		Short: "Consulta, modifica o cancella una prenotazione tramite token.",
	}
	gestisci.AddCommand(newGestisciShowCommand(deps))
	gestisci.AddCommand(newGestisciEditCommand(deps))
	gestisci.AddCommand(newGestisciCancelCommand(deps))
	return gestisci
}

func loadFlow(cmd *cobra.Command, deps Dependencies, token string) (*selfservice.Flow, error) {
	flow := selfservice.NewFlow(deps.API, token)
	if err := flow.Load(cmd.Context()); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, errors.New("prenotazione non trovata o link scaduto")
		}
		return nil, err
	}
	return flow, nil
}

func printReservation(cmd *cobra.Command, flow *selfservice.Flow) error {
	p := flow.Reservation()
	w := newTable(cmd.OutOrStdout())
	printRow(w, "Cliente", p.NomeCliente)
	printRow(w, "Data e ora", p.DataOra.Format("02/01/2006 15:04"))
	printRow(w, "Coperti", p.NumeroPersone)
	printRow(w, "Stato", p.Stato)
	if p.Note != "" {
		printRow(w, "Note", p.Note)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	actions := flow.Actions()
	if len(actions) == 0 {
		printf(cmd, "\nLa prenotazione non e' piu' modificabile.\n")
		return nil
	}
	printf(cmd, "\nAzioni disponibili:")
	for _, a := range actions {
		printf(cmd, " %s", a)
	}
	printf(cmd, "\n")
	return nil
}

func newGestisciShowCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "show <token>",
		Short: "Mostra la prenotazione legata al token.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := loadFlow(cmd, deps, args[0])
			if err != nil {
				return err
			}
			return printReservation(cmd, flow)
		},
	}
}

func newGestisciEditCommand(deps Dependencies) *cobra.Command {
	var dataOra string
	var persone int
	var note string

	cmd := &cobra.Command{
		Use:   "edit <token>",
		Short: "Modifica data, coperti o note della prenotazione.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := loadFlow(cmd, deps, args[0])
			if err != nil {
				return err
			}

			form, err := flow.BeginEdit()
			if err != nil {
				return err
			}
			if dataOra != "" {
				form.DataOra = dataOra
			}
			if persone > 0 {
				form.NumeroPersone = persone
			}
			if cmd.Flags().Changed("note") {
				form.Note = note
			}

			if err := flow.SubmitEdit(cmd.Context(), *form); err != nil {
				if errors.Is(err, client.ErrConflict) {
					return errors.New("la prenotazione non e' piu' modificabile")
				}
				return err
			}
			printf(cmd, "Prenotazione aggiornata.\n")
			return printReservation(cmd, flow)
		},
	}
	cmd.Flags().StringVar(&dataOra, "data-ora", "", "Nuova data e ora (RFC 3339).")
	cmd.Flags().IntVar(&persone, "persone", 0, "Nuovo numero di coperti.")
	cmd.Flags().StringVar(&note, "note", "", "Nuove note.")
	return cmd
}

func newGestisciCancelCommand(deps Dependencies) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "cancel <token>",
		Short: "Cancella la prenotazione (richiede --conferma).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := loadFlow(cmd, deps, args[0])
			if err != nil {
				return err
			}
			if err := flow.Cancel(cmd.Context(), confirmed); err != nil {
				if errors.Is(err, selfservice.ErrConfirmationRequired) {
					return errors.New("aggiungi --conferma per cancellare davvero la prenotazione")
				}
				return err
			}
			printf(cmd, "Prenotazione cancellata.\n")
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirmed, "conferma", false, "Conferma la cancellazione.")
	return cmd
}
