package domain

// CompletionTime is the rough time to finish a game
type CompletionTime struct {
	Story string `json:"story"`
	Full  string `json:"full"`
}

// Emulator is a downloadable emulator offered alongside a retro console
type Emulator struct {
	Name         string `json:"name"`
	DownloadLink string `json:"download_link"`
}

// CatalogItem represents a game or console offered by the shop
type CatalogItem struct {
	ID             string          `json:"id"`
	Kind           ItemKind        `json:"kind"`
	Name           string          `json:"name"`
	Price          float64         `json:"price"`
	Platform       string          `json:"platform,omitempty"`
	Year           int             `json:"year"`
	Category       Category        `json:"category,omitempty"`
	Type           ItemType        `json:"type"`
	Popularity     int             `json:"popularity,omitempty"`
	Rating         float64         `json:"rating,omitempty"`
	Stock          int             `json:"stock"`
	Image          string          `json:"image"`
	Description    string          `json:"description"`
	CompletionTime *CompletionTime `json:"completion_time,omitempty"`
	ROMLink        *string         `json:"rom_link,omitempty"`
	Emulators      []Emulator      `json:"emulators,omitempty"`
}

// Clone returns a copy that shares no mutable state with the receiver
func (i CatalogItem) Clone() CatalogItem {
	out := i
	if i.CompletionTime != nil {
		ct := *i.CompletionTime
		out.CompletionTime = &ct
	}
	if i.ROMLink != nil {
		link := *i.ROMLink
		out.ROMLink = &link
	}
	if i.Emulators != nil {
		out.Emulators = append([]Emulator(nil), i.Emulators...)
	}
	return out
}

// CartLine is one row of a shopping cart. The JSON layout is also the
// persisted layout.
type CartLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Platform string  `json:"platform"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price times quantity, unrounded
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// User represents a signed-in storefront customer
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Soundtrack is a featured theme from a game in the catalog
type Soundtrack struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Artist   string `json:"artist"`
	Game     string `json:"game"`
	Image    string `json:"image"`
	AudioURL string `json:"audio_url"`
}
