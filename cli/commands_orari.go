package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vicosaas/vico-backend/client"
)

func newOrariCommand(deps Dependencies) *cobra.Command {
	orari := &cobra.Command{
		Use:   "orari",
		Short: "Orari settimanali di apertura.",
	}
	orari.AddCommand(newOrariShowCommand(deps))
	orari.AddCommand(newOrariSetCommand(deps))
	return orari
}

func newOrariShowCommand(deps Dependencies) *cobra.Command {
	var ristoranteID uint

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Mostra la settimana completa.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ristoranteID == 0 {
				return errors.New("--ristorante e' obbligatorio")
			}
			days, err := deps.API.GetSchedule(cmd.Context(), ristoranteID)
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			printRow(w, "GIORNO", "APERTO", "PRANZO", "CENA")
			for _, day := range days {
				if !day.Aperto {
					printRow(w, giorniSettimana[day.Giorno], "chiuso", "-", "-")
					continue
				}
				printRow(w, giorniSettimana[day.Giorno], "aperto",
					day.PranzoDa+"-"+day.PranzoA, day.CenaDa+"-"+day.CenaA)
			}
			return w.Flush()
		},
	}
	cmd.Flags().UintVarP(&ristoranteID, "ristorante", "r", 0, "ID del ristorante.")
	return cmd
}

func newOrariSetCommand(deps Dependencies) *cobra.Command {
	var ristoranteID uint
	var day client.DaySchedule
	var chiuso bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Aggiorna un giorno della settimana.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ristoranteID == 0 {
				return errors.New("--ristorante e' obbligatorio")
			}
			if day.Giorno < 0 || day.Giorno > 6 {
				return errors.New("--giorno deve essere tra 0 (lunedi) e 6 (domenica)")
			}
			day.Aperto = !chiuso
			updated, err := deps.API.UpdateSchedule(cmd.Context(), ristoranteID, []client.DaySchedule{day})
			if err != nil {
				return err
			}
			printf(cmd, "Orari aggiornati, %d giorni configurati.\n", len(updated))
			return nil
		},
	}
	cmd.Flags().UintVarP(&ristoranteID, "ristorante", "r", 0, "ID del ristorante.")
	cmd.Flags().IntVar(&day.Giorno, "giorno", 0, "Giorno della settimana, 0=lunedi .. 6=domenica.")
	cmd.Flags().BoolVar(&chiuso, "chiuso", false, "Segna il giorno come chiuso.")
	cmd.Flags().StringVar(&day.PranzoDa, "pranzo-da", "", "Apertura pranzo (HH:MM).")
	cmd.Flags().StringVar(&day.PranzoA, "pranzo-a", "", "Chiusura pranzo (HH:MM).")
	cmd.Flags().StringVar(&day.CenaDa, "cena-da", "", "Apertura cena (HH:MM).")
	cmd.Flags().StringVar(&day.CenaA, "cena-a", "", "Chiusura cena (HH:MM).")
	return cmd
}

func newDashboardCommand(deps Dependencies) *cobra.Command {
	var ristoranteID uint

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Statistiche del giorno.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := deps.API.GetDashboardStats(cmd.Context(), ristoranteID)
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			printRow(w, "Prenotazioni oggi", stats.PrenotazioniOggi)
			printRow(w, "Coperti oggi", stats.CopertiOggi)
			printRow(w, "Confermate", stats.StatoPrenotazioni.Confermate)
			printRow(w, "Cancellate", stats.StatoPrenotazioni.Cancellate)
			printRow(w, "Completate", stats.StatoPrenotazioni.Completate)
			printRow(w, "Tavoli liberi", stats.StatoTavoli.Available)
			printRow(w, "Tavoli occupati", stats.StatoTavoli.Occupied)
			printRow(w, "Tavoli riservati", stats.StatoTavoli.Reserved)
			printRow(w, "Tavoli totali", stats.StatoTavoli.Total)
			return w.Flush()
		},
	}
	cmd.Flags().UintVarP(&ristoranteID, "ristorante", "r", 0, "Filtra per ristorante.")
	return cmd
}
