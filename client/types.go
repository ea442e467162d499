package client

import "time"

// Tipi wire del backend VICO. I nomi dei campi JSON sono quelli
// dell'API (italiani), come nel front-end storico.

type Restaurant struct {
	ID               uint      `json:"id"`
	Nome             string    `json:"nome"`
	Indirizzo        string    `json:"indirizzo"`
	Telefono         string    `json:"telefono"`
	PIva             string    `json:"p_iva"`
	SlotPrenotazione int       `json:"slot_prenotazione"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreateRestaurant struct {
	Nome             string `json:"nome"`
	Indirizzo        string `json:"indirizzo"`
	Telefono         string `json:"telefono"`
	PIva             string `json:"p_iva"`
	SlotPrenotazione int    `json:"slot_prenotazione"`
}

type UpdateRestaurant struct {
	Nome             *string `json:"nome,omitempty"`
	Indirizzo        *string `json:"indirizzo,omitempty"`
	Telefono         *string `json:"telefono,omitempty"`
	PIva             *string `json:"p_iva,omitempty"`
	SlotPrenotazione *int    `json:"slot_prenotazione,omitempty"`
	IsActive         *bool   `json:"is_active,omitempty"`
}

type Room struct {
	ID           uint    `json:"id"`
	RistoranteID uint    `json:"ristorante_id"`
	Nome         string  `json:"nome"`
	Descrizione  string  `json:"descrizione,omitempty"`
	Capienza     int     `json:"capienza"`
	IsActive     bool    `json:"is_active"`
	Tavoli       []Table `json:"tavoli"`
}

type Table struct {
	ID     uint   `json:"id"`
	SalaID uint   `json:"sala_id"`
	Numero string `json:"numero"`
	Posti  int    `json:"posti"`
	Stato  string `json:"stato"`
}

type RoomInput struct {
	Nome        string `json:"nome"`
	Descrizione string `json:"descrizione,omitempty"`
	Capienza    int    `json:"capienza"`
}

type TableInput struct {
	Numero string `json:"numero"`
	Posti  int    `json:"posti"`
	Stato  string `json:"stato,omitempty"`
}

type DaySchedule struct {
	Giorno   int    `json:"giorno"`
	Aperto   bool   `json:"aperto"`
	PranzoDa string `json:"pranzo_da,omitempty"`
	PranzoA  string `json:"pranzo_a,omitempty"`
	CenaDa   string `json:"cena_da,omitempty"`
	CenaA    string `json:"cena_a,omitempty"`
}

type Reservation struct {
	ID              uint      `json:"id"`
	RistoranteID    uint      `json:"ristorante_id"`
	TavoloID        *uint     `json:"tavolo_id,omitempty"`
	NomeCliente     string    `json:"nome_cliente"`
	EmailCliente    string    `json:"email_cliente,omitempty"`
	TelefonoCliente string    `json:"telefono_cliente"`
	DataOra         time.Time `json:"data_ora"`
	NumeroPersone   int       `json:"numero_persone"`
	Note            string    `json:"note,omitempty"`
	Stato           string    `json:"stato"`
}

// IsTerminal: cancellata o completata = sola lettura per il cliente.
func (r *Reservation) IsTerminal() bool {
	return r.Stato == "cancellata" || r.Stato == "completata"
}

type CreateReservation struct {
	RistoranteID    uint   `json:"ristorante_id"`
	TavoloID        *uint  `json:"tavolo_id,omitempty"`
	NomeCliente     string `json:"nome_cliente"`
	EmailCliente    string `json:"email_cliente,omitempty"`
	TelefonoCliente string `json:"telefono_cliente"`
	DataOra         string `json:"data_ora"`
	NumeroPersone   int    `json:"numero_persone"`
	Note            string `json:"note,omitempty"`
}

// ReservationUpdate sono gli unici campi che il self-service puo'
// toccare.
type ReservationUpdate struct {
	DataOra       *string `json:"data_ora,omitempty"`
	NumeroPersone *int    `json:"numero_persone,omitempty"`
	Note          *string `json:"note,omitempty"`
}

// CreatedReservation accompagna la prenotazione appena creata con il
// token di gestione, mostrato al cliente una sola volta.
type CreatedReservation struct {
	Prenotazione Reservation `json:"prenotazione"`
	ManageToken  string      `json:"manage_token"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
}

type Profile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
