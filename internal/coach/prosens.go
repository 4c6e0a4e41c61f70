package coach

import (
	"fmt"
	"strings"
)

// ProSens is the exact sensitivity setup of a known pro player.
type ProSens struct {
	Display string
	Aliases []string
	DPI     int
	X       float64
	Y       float64
	Target  float64
	Scope   float64
	Style   string
}

var proSens = []ProSens{
	{
		Display: "Clix",
		Aliases: []string{"clix"},
		DPI:     800, X: 8.7, Y: 6.3, Target: 90.9, Scope: 82.7,
		Style: "Very aggressive, lots of explosive pushes and fast editing.",
	},
	{
		Display: "Bugha",
		Aliases: []string{"bugha", "buga"},
		DPI:     800, X: 6.4, Y: 6.4, Target: 45, Scope: 45,
		Style: "Balanced and super consistent, almost no mechanical mistakes.",
	},
	{
		Display: "TaySon",
		Aliases: []string{"tayson", "tay son"},
		DPI:     800, X: 5.8, Y: 5.8, Target: 29, Scope: 30,
		Style: "Pinpoint AIM, plays a perfect mid/late game.",
	},
	{
		Display: "EpikWhale",
		Aliases: []string{"epikwhale", "epik whale", "epik"},
		DPI:     800, X: 7.0, Y: 7.0, Target: 30, Scope: 40,
		Style: "Aggressive plus strategic mix, strong piece control.",
	},
	{
		Display: "Veno",
		Aliases: []string{"veno"},
		DPI:     800, X: 5.8, Y: 5.8, Target: 45, Scope: 45,
		Style: "Smart aggression, looks for angles and safe trades.",
	},
	{
		Display: "MrSavage",
		Aliases: []string{"mrsavage", "mr savage"},
		DPI:     1450, X: 6.3, Y: 6.3, Target: 50, Scope: 55,
		Style: "Ultra aggressive, trusts his mechanics and fast edits.",
	},
	{
		Display: "Peterbot",
		Aliases: []string{"peterbot", "peter bot"},
		DPI:     1600, X: 4.6, Y: 4.6, Target: 45, Scope: 45,
		Style: "Insane AIM, plays very aggressive with great tracking.",
	},
	{
		Display: "Pollo",
		Aliases: []string{"pollo"},
		DPI:     800, X: 6.5, Y: 6.5, Target: 50, Scope: 50,
		Style: "Aggressive but tidy, very strong in box fights.",
	},
}

// LookupProSens scans free text for a known pro player name and
// returns a formatted sens card, or "" when nothing matches.
func LookupProSens(text string) string {
	low := strings.ToLower(text)

	for _, p := range proSens {
		for _, alias := range p.Aliases {
			if strings.Contains(low, alias) {
				return formatProSens(p)
			}
		}
	}
	return ""
}

func formatProSens(p ProSens) string {
	return fmt.Sprintf("🎮 <b>%s's sens</b>\n\n", p.Display) +
		fmt.Sprintf("• DPI: <b>%d</b>\n", p.DPI) +
		fmt.Sprintf("• X: <b>%.1f%%</b>\n", p.X) +
		fmt.Sprintf("• Y: <b>%.1f%%</b>\n", p.Y) +
		fmt.Sprintf("• Targeting: <b>%.1f%%</b>\n", p.Target) +
		fmt.Sprintf("• Scope: <b>%.1f%%</b>\n\n", p.Scope) +
		fmt.Sprintf("🧠 Playstyle: %s\n\n", p.Style) +
		"Keep in mind these sens values change over time.\n" +
		"If you want, I can build a <b>personalized sens</b> based on this one, " +
		"adjusted to your DPI, resolution and style (aggressive/passive)."
}
