package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vicosaas/vico-backend/client"
	"github.com/vicosaas/vico-backend/utils"
)

func newMenuCommand(deps Dependencies) *cobra.Command {
	menu := &cobra.Command{
		Use:   "menu",
		Short: "Carta del ristorante.",
	}
	menu.AddCommand(newMenuListCommand(deps))
	menu.AddCommand(newMenuAddCommand(deps))
	menu.AddCommand(newMenuDeleteCommand(deps))
	return menu
}

func newMenuListCommand(deps Dependencies) *cobra.Command {
	var ristoranteID uint

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Elenca i piatti con la categoria.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := deps.API.GetMenu(cmd.Context(), ristoranteID)
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			printRow(w, "ID", "CATEGORIA", "PIATTO", "PREZZO", "IN CARTA")
			for _, item := range items {
				printRow(w, item.ID, item.Categoria.Nome, item.Nome,
					utils.FormatEuro(item.Prezzo), item.IsActive)
			}
			return w.Flush()
		},
	}
	cmd.Flags().UintVarP(&ristoranteID, "ristorante", "r", 0, "Filtra per ristorante.")
	return cmd
}

func newMenuAddCommand(deps Dependencies) *cobra.Command {
	var in client.MenuItemInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Aggiunge un piatto alla carta.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.Nome == "" || in.Prezzo <= 0 {
				return errors.New("--nome e --prezzo sono obbligatori")
			}
			item, err := deps.API.CreateMenuItem(cmd.Context(), in)
			if err != nil {
				return err
			}
			printf(cmd, "Piatto %d aggiunto: %s a %s\n", item.ID, item.Nome, utils.FormatEuro(item.Prezzo))
			return nil
		},
	}
	cmd.Flags().UintVarP(&in.RistoranteID, "ristorante", "r", 0, "ID del ristorante.")
	cmd.Flags().UintVar(&in.CategoriaID, "categoria", 0, "ID della categoria.")
	cmd.Flags().StringVar(&in.Nome, "nome", "", "Nome del piatto.")
	cmd.Flags().StringVar(&in.Descrizione, "descrizione", "", "Descrizione.")
	cmd.Flags().Float64Var(&in.Prezzo, "prezzo", 0, "Prezzo in euro.")
	return cmd
}

func newMenuDeleteCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <piatto_id>",
		Short: "Toglie un piatto dalla carta.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := deps.API.DeleteMenuItem(cmd.Context(), id); err != nil {
				return err
			}
			printf(cmd, "Piatto %d eliminato.\n", id)
			return nil
		},
	}
}
