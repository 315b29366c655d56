package oracle

import "github.com/cory-johannsen/wildshelper/internal/game/campaign"

var (
	weatherSpring = map[int]string{
		1: "Clear skies, warm breeze",
		2: "Overcast, mild",
		3: "Light rain showers",
		4: "Heavy rain",
		5: "Thunderstorms",
		6: "Fog and mist",
	}
	weatherSummer = map[int]string{
		1: "Hot and sunny",
		2: "Clear and warm",
		3: "Humid and overcast",
		4: "Afternoon thunderstorms",
		5: "Scorching heat",
		6: "Sudden downpour",
	}
	weatherFall = map[int]string{
		1: "Cool and crisp",
		2: "Overcast, chilly",
		3: "Light rain",
		4: "Heavy winds",
		5: "Cold rain",
		6: "Early frost",
	}
	weatherWinter = map[int]string{
		1: "Clear and cold",
		2: "Overcast, freezing",
		3: "Light snow",
		4: "Heavy snow",
		5: "Blizzard conditions",
		6: "Ice storm",
	}
	discoveries = map[int]string{
		1: "Natural landmark (waterfall, ancient tree, rock formation)",
		2: "Ruins or abandoned structure",
		3: "Resource cache (food, water, materials)",
		4: "Wildlife den or nest",
		5: "Signs of other survivors",
		6: "Mysterious or magical phenomenon",
	}
	encounters = map[int]string{
		1: "Peaceful wildlife",
		2: "Aggressive predator",
		3: "Sylvani (forest folk)",
		4: "Other survivors",
		5: "Environmental hazard",
		6: "Unexpected opportunity",
	}
	complications = map[int]string{
		1: "Equipment damaged or lost",
		2: "Injuries or exhaustion",
		3: "Weather worsens",
		4: "Lost or disoriented",
		5: "Resources depleted",
		6: "Unwanted attention",
	}
)

// Default returns the built-in tables.
func Default() *Book {
	return &Book{
		weather: map[campaign.Season]Table{
			campaign.Spring: mustTable("weather/spring", weatherSpring),
			campaign.Summer: mustTable("weather/summer", weatherSummer),
			campaign.Fall:   mustTable("weather/fall", weatherFall),
			campaign.Winter: mustTable("weather/winter", weatherWinter),
		},
		flat: map[Category]Table{
			Discovery:    mustTable(string(Discovery), discoveries),
			Encounter:    mustTable(string(Encounter), encounters),
			Complication: mustTable(string(Complication), complications),
		},
	}
}
