package domain

// ItemKind distinguishes games from consoles in the catalog
type ItemKind string

const (
	ItemKindGame    ItemKind = "game"
	ItemKindConsole ItemKind = "console"
)

// Category is the genre bucket a game is listed under
type Category string

const (
	CategoryRetro        Category = "retro"
	CategoryAction       Category = "action"
	CategoryAdventure    Category = "adventure"
	CategorySubscription Category = "subscription"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryRetro,
	CategoryAction,
	CategoryAdventure,
	CategorySubscription,
}

// IsValid checks if the category is one the shop lists
func (c Category) IsValid() bool {
	switch c {
	case CategoryRetro, CategoryAction, CategoryAdventure, CategorySubscription:
		return true
	default:
		return false
	}
}

// ItemType is the distribution type of a game or the generation of a console
type ItemType string

const (
	ItemTypeRetail       ItemType = "retail"
	ItemTypeROM          ItemType = "rom"
	ItemTypeSubscription ItemType = "subscription"

	ItemTypeRetro   ItemType = "retro"
	ItemTypeCurrent ItemType = "current"
)

// GameTypes lists the types a game can have
var GameTypes = []ItemType{ItemTypeRetail, ItemTypeROM, ItemTypeSubscription}

// ConsoleTypes lists the types a console can have
var ConsoleTypes = []ItemType{ItemTypeRetro, ItemTypeCurrent}

// IsValid checks if the item type is known
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeRetail,
		ItemTypeROM,
		ItemTypeSubscription,
		ItemTypeRetro,
		ItemTypeCurrent:
		return true
	default:
		return false
	}
}

// Platforms lists every platform a game is sold for
var Platforms = []string{
	"PC",
	"Nintendo Switch",
	"PlayStation 5",
	"Xbox Game Pass",
	"NES",
	"Game Boy",
	"Arcade",
}

// IsKnownPlatform reports whether p is one of Platforms
func IsKnownPlatform(p string) bool {
	for _, known := range Platforms {
		if known == p {
			return true
		}
	}
	return false
}

// SortKey selects the ordering applied to a catalog listing
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByPriceLow   SortKey = "price-low"
	SortByPriceHigh  SortKey = "price-high"
	SortByYear       SortKey = "year"
	SortByPopularity SortKey = "popularity"
	SortByRating     SortKey = "rating"
)

// SortKeys lists every supported sort in display order
var SortKeys = []SortKey{
	SortByName,
	SortByPriceLow,
	SortByPriceHigh,
	SortByYear,
	SortByPopularity,
	SortByRating,
}

// IsValid checks if the sort key is supported
func (k SortKey) IsValid() bool {
	switch k {
	case SortByName,
		SortByPriceLow,
		SortByPriceHigh,
		SortByYear,
		SortByPopularity,
		SortByRating:
		return true
	default:
		return false
	}
}

// Role is the permission level of a storefront user
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)
