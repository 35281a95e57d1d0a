package dataset

import "github.com/daffahilmyf/dictators-seed/internal/domain/entity"

const DefaultName = "default"

// Default returns the built-in sample set. Order matters: the fallback path
// creates dictators in exactly this order.
func Default() Dataset {
	ds, err := New(DefaultName, defaultDictators(), defaultAchievements())
	if err != nil {
		panic(err)
	}
	ds.builtin = true
	return ds
}

func defaultDictators() []entity.DictatorRecord {
	return []entity.DictatorRecord{
		{
			Username:     "napoleon",
			Name:         "Napoleon Bonaparte",
			Country:      "France",
			Description:  "Emperor of the French, military genius, and conqueror of Europe",
			YearsInPower: "1799-1815",
		},
		{
			Username:     "caesar",
			Name:         "Julius Caesar",
			Country:      "Roman Empire",
			Description:  "Roman general and statesman who played a critical role in the events that led to the demise of the Roman Republic",
			YearsInPower: "49-44 BC",
		},
		{
			Username:     "genghis",
			Name:         "Genghis Khan",
			Country:      "Mongol Empire",
			Description:  "Founder and first Great Khan of the Mongol Empire, which became the largest contiguous empire in history",
			YearsInPower: "1206-1227",
		},
	}
}

func defaultAchievements() map[string][]entity.AchievementRecord {
	return map[string][]entity.AchievementRecord{
		"napoleon": {
			{
				Title:       "Conquered most of Europe",
				Description: "Successfully conquered and controlled most of continental Europe through military campaigns",
				Year:        1807,
			},
			{
				Title:       "Napoleonic Code",
				Description: "Created the Napoleonic Code, a civil code that influenced legal systems worldwide",
				Year:        1804,
			},
		},
		"caesar": {
			{
				Title:       "Crossed the Rubicon",
				Description: "Made the famous decision to cross the Rubicon river, starting a civil war that led to his rise to power",
				Year:        49,
			},
			{
				Title:       "Conquered Gaul",
				Description: "Successfully conquered all of Gaul (modern-day France) in the Gallic Wars",
				Year:        50,
			},
		},
		"genghis": {
			{
				Title:       "Created the largest contiguous empire",
				Description: "Built the Mongol Empire, the largest contiguous land empire in history",
				Year:        1220,
			},
			{
				Title:       "United the Mongol tribes",
				Description: "Successfully united the warring Mongol tribes under his leadership",
				Year:        1206,
			},
		},
	}
}
