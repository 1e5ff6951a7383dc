package quiz

// Stage describes one quiz stage: its display name and how many correct
// answers clear it.
type Stage struct {
	Name     string
	Required int
}

// Stages lists the four stages in play order. The thresholds come from the
// drill's fixed difficulty curve, not from the selected data.
var Stages = [4]Stage{
	{Name: "Choose the romaji", Required: 5},
	{Name: "Choose the kana", Required: 7},
	{Name: "Type the romaji", Required: 10},
	{Name: "Type three romaji", Required: 10},
}
