package messages

// Menu section identifiers double as callback data.
const (
	SectionConfig   = "cfg"
	SectionAim      = "sens"
	SectionTraining = "entreno"
	SectionDrops    = "mapas"
	SectionCombos   = "combos"
	SectionOptimize = "optimizar"
	SectionDuo      = "duo"
	SectionMindset  = "mento"
	SectionRole     = "rol"
	SectionAnalyze  = "analizar"
	SectionMatch    = "resumen"
)

var sections = map[string]string{
	SectionConfig: "🎮 <b>PRO CONFIG AND SENSITIVITY</b>\n\n" +
		"Send me:\n" +
		"• Your DPI\n" +
		"• Your resolution\n" +
		"• Whether you play more <b>aggressive</b> or <b>passive</b>\n\n" +
		"I'll build you a config in the style of <b>Clix / Peterbot / Queasy</b> to match.\n" +
		"If you want one pro in particular, say something like <i>\"sens like Clix\"</i>.",
	SectionAim: "🎯 <b>AIM / MECHANICS / EDITING</b>\n\n" +
		"Recommended maps:\n" +
		"• Raider464 Aim Trainer\n" +
		"• Skavook Aim\n" +
		"• Piece Control / Realistics 1v1\n\n" +
		"Tell me your level (low / mid / high) and how long you can train per day " +
		"and I'll build an AIM / editing routine for you.",
	SectionTraining: "📚 <b>PRO TRAINING ROUTINES (PREMIUM)</b>\n\n" +
		"With Premium you get <b>DAILY routines</b> built like FNCS players use:\n" +
		"• AIM warm-up\n" +
		"• Mechanics and piece control\n" +
		"• Realistics / Arena / Scrims\n" +
		"• Targeted work on your mistakes\n\n" +
		"Tell me if you have 15 / 30 / 60 minutes and your goal (FNCS, Cash Cups, Ranked).",
	SectionDrops: "🗺 <b>COMPETITIVE DROPS &amp; ROTATIONS (PREMIUM)</b>\n\n" +
		"With Premium I recommend:\n" +
		"• Drops with consistent loot\n" +
		"• Clean rotations that keep you out of the middle\n" +
		"• Mid / late game spots\n" +
		"• A game plan for solo / duo / trio\n\n" +
		"Tell me your mode, region and whether you play aggressive or macro.",
	SectionCombos: "🔫 <b>META LOADOUTS (GENERAL)</b>\n\n" +
		"Depends on the season, but in general:\n" +
		"• Shotgun + AR + Heals\n" +
		"• Shotgun + SMG + Heals\n" +
		"• If you IGL: prioritize mobility and heals.\n\n" +
		"Tell me the current season and I'll tune the loadout to what's strong now.",
	SectionOptimize: "⚙ <b>PC OPTIMIZATION FOR FORTNITE (PREMIUM)</b>\n\n" +
		"Send me your:\n" +
		"• CPU\n" +
		"• GPU\n" +
		"• RAM\n" +
		"• Monitor refresh rate\n\n" +
		"And I'll give you an exact setup for more FPS and less input lag.",
	SectionDuo: "👥 <b>DUO / COMMS / ROLES</b>\n\n" +
		"Tell me how you and your duo play:\n" +
		"• Who edits better\n" +
		"• Who tilts more\n" +
		"• Who watches the map more\n\n" +
		"And I'll tell you who should IGL / frag / support and how to improve your calls.",
	SectionMindset: "🧠 <b>COMPETITIVE MINDSET</b>\n\n" +
		"Tell me what frustrates you most (ping, silly mistakes, tournament nerves) " +
		"and I'll give you concrete tips to:\n" +
		"• Stop tilting\n" +
		"• Play colder in endgame\n" +
		"• Reset between games\n" +
		"• Build a pre-tournament routine.",
	SectionRole: "🏷 <b>COMPETITIVE ROLE (PREMIUM)</b>\n\n" +
		"Tell me your style:\n" +
		"• More aggressive or more macro?\n" +
		"• Fast editor?\n" +
		"• Do you like making the calls?\n\n" +
		"And I'll tell you which role fits you (IGL / Fragger / Support) and how to play it.",
	SectionAnalyze: "📊 <b>SKILL ANALYSIS (PREMIUM)</b>\n\n" +
		"Send me:\n" +
		"• Platform (PC/Console)\n" +
		"• Average FPS\n" +
		"• Current division / rank\n" +
		"• Whether you play more creative or arena\n\n" +
		"And I'll tell you where you're strong, where you're weak and what to train first.",
	SectionMatch: "📝 <b>MATCH ANALYSIS (PREMIUM)</b>\n\n" +
		"Send me a recap of your match:\n" +
		"• Where you dropped\n" +
		"• What loot you had\n" +
		"• Which phase you died in (early / mid / late)\n" +
		"• How the opponent killed you\n\n" +
		"And I'll explain what you could have done differently, the PRO way.",
}

func Section(data string) string {
	if s, ok := sections[data]; ok {
		return s
	}
	return "❓ Section not found."
}

// FreeSection reports whether the section is open to everyone.
func FreeSection(data string) bool {
	switch data {
	case SectionConfig, SectionAim, SectionCombos, SectionDuo, SectionMindset:
		return true
	}
	return false
}

// PremiumSection reports whether the section is gated behind premium.
func PremiumSection(data string) bool {
	switch data {
	case SectionTraining, SectionDrops, SectionOptimize, SectionRole, SectionAnalyze, SectionMatch:
		return true
	}
	return false
}

// AnalysisSection marks the sections that award the larger XP amount.
func AnalysisSection(data string) bool {
	switch data {
	case SectionTraining, SectionDrops, SectionAnalyze, SectionMatch:
		return true
	}
	return false
}
