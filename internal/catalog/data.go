package catalog

import "github.com/retropixel/storefront/internal/domain"

func strPtr(s string) *string { return &s }

// defaultItems is the static inventory served by the shop
func defaultItems() []domain.CatalogItem {
	return []domain.CatalogItem{
		{
			ID:             "game-1",
			Kind:           domain.ItemKindGame,
			Name:           "The Legend of Zelda: Breath of the Wild",
			Price:          59.99,
			Platform:       "Nintendo Switch",
			Year:           2017,
			Category:       domain.CategoryAdventure,
			Popularity:     95,
			Image:          "https://images.unsplash.com/photo-1493711662062-fa541adb3fc8?w=400",
			Stock:          12,
			Rating:         9.8,
			Description:    "Explore a vast world full of adventure in Nintendo's masterpiece.",
			CompletionTime: &domain.CompletionTime{Story: "50-60 hours", Full: "100+ hours"},
			Type:           domain.ItemTypeRetail,
		},
		{
			ID:             "game-2",
			Kind:           domain.ItemKindGame,
			Name:           "Super Mario Bros. 3",
			Price:          4.99,
			Platform:       "NES",
			Year:           1988,
			Category:       domain.CategoryRetro,
			Popularity:     98,
			Image:          "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=400",
			Stock:          34,
			Rating:         9.9,
			Description:    "The platforming classic that defined a generation.",
			CompletionTime: &domain.CompletionTime{Story: "8-10 hours", Full: "15-20 hours"},
			Type:           domain.ItemTypeROM,
			ROMLink:        strPtr("https://example.com/rom/mario3.zip"),
		},
		{
			ID:             "game-3",
			Kind:           domain.ItemKindGame,
			Name:           "Cyberpunk 2077",
			Price:          29.99,
			Platform:       "PC",
			Year:           2020,
			Category:       domain.CategoryAction,
			Popularity:     78,
			Image:          "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=400",
			Stock:          9,
			Rating:         7.8,
			Description:    "Live the life of Night City in this futuristic open-world RPG.",
			CompletionTime: &domain.CompletionTime{Story: "25-30 hours", Full: "80+ hours"},
			Type:           domain.ItemTypeRetail,
		},
		{
			ID:             "game-4",
			Kind:           domain.ItemKindGame,
			Name:           "Pac-Man",
			Price:          2.99,
			Platform:       "Arcade",
			Year:           1980,
			Category:       domain.CategoryRetro,
			Popularity:     100,
			Image:          "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400",
			Stock:          88,
			Rating:         9.5,
			Description:    "The iconic game that built the video game industry.",
			CompletionTime: &domain.CompletionTime{Story: "2-3 hours", Full: "10+ hours"},
			Type:           domain.ItemTypeROM,
			ROMLink:        strPtr("https://example.com/rom/pacman.zip"),
		},
		{
			ID:             "game-5",
			Kind:           domain.ItemKindGame,
			Name:           "Halo Infinite",
			Price:          0,
			Platform:       "Xbox Game Pass",
			Year:           2021,
			Category:       domain.CategorySubscription,
			Popularity:     85,
			Image:          "https://images.unsplash.com/photo-1632501641765-e568d28b0015?w=400",
			Stock:          999,
			Rating:         8.5,
			Description:    "Master Chief returns in a new epic adventure.",
			CompletionTime: &domain.CompletionTime{Story: "12-15 hours", Full: "40+ hours"},
			Type:           domain.ItemTypeSubscription,
		},
		{
			ID:             "game-6",
			Kind:           domain.ItemKindGame,
			Name:           "Tetris",
			Price:          1.99,
			Platform:       "Game Boy",
			Year:           1989,
			Category:       domain.CategoryRetro,
			Popularity:     99,
			Image:          "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=400",
			Stock:          61,
			Rating:         9.7,
			Description:    "The most addictive puzzle of all time.",
			CompletionTime: &domain.CompletionTime{Story: "Endless", Full: "Endless"},
			Type:           domain.ItemTypeROM,
			ROMLink:        strPtr("https://example.com/rom/tetris.zip"),
		},
		{
			ID:          "console-1",
			Kind:        domain.ItemKindConsole,
			Name:        "Nintendo Switch OLED",
			Price:       349.99,
			Type:        domain.ItemTypeCurrent,
			Year:        2021,
			Image:       "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=400",
			Stock:       7,
			Description: "Nintendo's most advanced hybrid console, with an OLED screen.",
		},
		{
			ID:          "console-2",
			Kind:        domain.ItemKindConsole,
			Name:        "Super Nintendo Entertainment System",
			Price:       89.99,
			Type:        domain.ItemTypeRetro,
			Year:        1990,
			Image:       "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=400",
			Stock:       3,
			Description: "The 16-bit console that changed video games.",
			Emulators: []domain.Emulator{
				{Name: "SNES9x", DownloadLink: "https://example.com/snes9x.zip"},
				{Name: "ZSNES", DownloadLink: "https://example.com/zsnes.zip"},
			},
		},
		{
			ID:          "console-3",
			Kind:        domain.ItemKindConsole,
			Name:        "PlayStation 5",
			Price:       499.99,
			Type:        domain.ItemTypeCurrent,
			Year:        2020,
			Image:       "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=400",
			Stock:       2,
			Description: "Sony's next-generation console.",
		},
		{
			ID:          "console-4",
			Kind:        domain.ItemKindConsole,
			Name:        "Nintendo Game Boy",
			Price:       59.99,
			Type:        domain.ItemTypeRetro,
			Year:        1989,
			Image:       "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=400",
			Stock:       5,
			Description: "The handheld that changed gaming forever.",
			Emulators: []domain.Emulator{
				{Name: "VisualBoyAdvance", DownloadLink: "https://example.com/vba.zip"},
				{Name: "mGBA", DownloadLink: "https://example.com/mgba.zip"},
			},
		},
	}
}

// defaultSoundtracks are the themes featured on the home page
func defaultSoundtracks() []domain.Soundtrack {
	return []domain.Soundtrack{
		{
			ID:       "track-1",
			Name:     "The Legend of Zelda: Main Theme",
			Artist:   "Nintendo",
			Game:     "The Legend of Zelda",
			Image:    "https://images.unsplash.com/photo-1493711662062-fa541adb3fc8?w=400",
			AudioURL: "https://www.soundjay.com/misc/sounds/fail-buzzer-01.wav",
		},
		{
			ID:       "track-2",
			Name:     "Super Mario Bros. Theme",
			Artist:   "Nintendo",
			Game:     "Super Mario Bros.",
			Image:    "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=400",
			AudioURL: "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
		},
		{
			ID:       "track-3",
			Name:     "Cyberpunk 2077: Wake the F*ck Up",
			Artist:   "CD Projekt Red",
			Game:     "Cyberpunk 2077",
			Image:    "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=400",
			AudioURL: "https://www.soundjay.com/misc/sounds/fail-buzzer-02.wav",
		},
		{
			ID:       "track-4",
			Name:     "Pac-Man Theme",
			Artist:   "Namco",
			Game:     "Pac-Man",
			Image:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400",
			AudioURL: "https://www.soundjay.com/misc/sounds/bell-ringing-03.wav",
		},
		{
			ID:       "track-5",
			Name:     "Halo Theme",
			Artist:   "Microsoft",
			Game:     "Halo",
			Image:    "https://images.unsplash.com/photo-1632501641765-e568d28b0015?w=400",
			AudioURL: "https://www.soundjay.com/misc/sounds/fail-buzzer-03.wav",
		},
	}
}
