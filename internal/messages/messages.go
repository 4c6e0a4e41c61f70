package messages

import (
	"fmt"
	"strings"
	"time"
)

const ParseModeHTML = "HTML"

func Escape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(strings.TrimSpace(s))
}

func ErrorDefault() string {
	return "🚫 <b>Something went wrong</b>\nPlease try again."
}

func ErrorUnsupportedMessageType() string {
	return "🤖 <b>I can't handle that</b>\nSend me a text message or use /menu."
}

func ErrorUnknownCommand() string {
	return "❓ <b>Unknown command</b>\nUse /help to see what I can do."
}

func StartWelcome() string {
	return "👋 <b>Welcome to the Fortnite AI Coach</b> – the bot the PROS pick. 🔥\n\n" +
		"💸 <b>Want to start earning in tournaments?</b> I'll guide you step by step.\n\n" +
		"I can help you with everything:\n" +
		"🎮 Pro configs and sensitivity\n" +
		"🎯 AIM / mechanics / editing\n" +
		"🗺 Competitive drops and rotations\n" +
		"⚙ PC optimization for more FPS\n" +
		"📚 Daily training routines\n" +
		"🧠 Competitive mindset\n" +
		"🔫 META loadouts\n" +
		"📈 Playstyle and match analysis\n\n" +
		"📌 <b>Main commands:</b>\n" +
		"• /menu – main menu with buttons\n" +
		"• /premiuminfo – plans and how to pay\n" +
		"• /profile – your XP, level and premium status\n" +
		"• /referrals – your code to invite friends\n" +
		"• /replay – how to send me a replay breakdown\n\n" +
		"🎮 <b>Pro sensitivities</b>\n" +
		"Ask me things like <i>\"sens like Clix\"</i> or <i>\"Peterbot sens\"</i> and " +
		"I'll explain the style and tune a sens inspired by them.\n\n" +
		"💎 <b>Premium plans:</b>\n" +
		"• 5 USD → 30 days\n" +
		"• 15 USD → forever (lifetime 🏆)\n" +
		"After paying, send the <b>payment screenshot</b> 📸 and the admin activates you.\n\n" +
		"🔥 Ready to take you to the next competitive level.\n" +
		"Use /menu or just tell me what you want to improve. 👇"
}

func About() string {
	return "🤖 <b>Fortnite AI Coach Premium</b>\n\n" +
		"Built for players who compete for real: FNCS, Cash Cups, scrims and ranked.\n" +
		"I use AI to analyze your game and build a realistic improvement plan, no fluff."
}

func MainMenuText() string {
	return "📋 <b>MAIN MENU – FORTNITE AI COACH PREMIUM</b>\n\n" +
		"Pick a category or just send me a message.\n\n" +
		"🔥 All the PROS prefer me.\n" +
		"🔥 Thousands of players already train with me.\n" +
		"🔥 Want to earn? I'll guide you step by step."
}

func PremiumInfo() string {
	return "━━━━━━━━━━━━━━━━━━\n" +
		"💎 <b>FORTNITE AI COACH PREMIUM</b>\n" +
		"━━━━━━━━━━━━━━━━━━\n\n" +
		"Premium unlocks:\n" +
		"✔ Unlimited PRO AI chat (ask me anything about Fortnite)\n" +
		"✔ Daily training routines\n" +
		"✔ Competitive drops and rotations\n" +
		"✔ PC optimization\n" +
		"✔ Match and skill analysis\n" +
		"✔ Competitive role (IGL / Fragger / Support)\n\n" +
		"💰 <b>Plans:</b>\n" +
		"• 5 USD → 30 days\n" +
		"• 15 USD → forever (lifetime 🏆)\n\n" +
		"1️⃣ Pay the plan you want on PayPal:\n" +
		"   • Monthly: https://paypal.me/botpremiumfort/5\n" +
		"   • Lifetime: https://paypal.me/botpremiumfort/15\n" +
		"2️⃣ Come back, tap <b>SEE PREMIUM</b> in /menu and then <b>I paid</b>.\n" +
		"3️⃣ Send the <b>payment screenshot</b> and the admin activates you.\n\n" +
		"If a discount is running today you can also use /code FNCS50."
}

func BuyPremium() string {
	return "━━━━━━━━━━━━━━━━━━\n" +
		"💎 <b>PREMIUM MODE – FORTNITE PRO COACH</b>\n" +
		"━━━━━━━━━━━━━━━━━━\n\n" +
		"✔ Unlimited PRO AI chat\n" +
		"✔ Personalized daily routines\n" +
		"✔ PRO competitive drops and rotations\n" +
		"✔ PC optimization for more FPS\n" +
		"✔ Match and skill analysis\n" +
		"✔ Roles, mindset and improvement plan\n\n" +
		"💰 <b>Available plans:</b>\n" +
		"• 5 USD → 30 days (monthly Standard)\n" +
		"• 15 USD → forever (lifetime 🏆)\n\n" +
		"1️⃣ Pay the plan you want on PayPal:\n" +
		"   • Monthly: https://paypal.me/botpremiumfort/5\n" +
		"   • Lifetime: https://paypal.me/botpremiumfort/15\n" +
		"2️⃣ Come back and tap <b>I paid</b>.\n" +
		"3️⃣ Send the <b>payment screenshot</b> and the admin activates you."
}

func PaymentInstructions() string {
	return "📸 <b>Perfect.</b>\n" +
		"Now send me the <b>PayPal payment screenshot</b> right here.\n" +
		"The admin will review it and, if everything checks out, activates your " +
		"Premium (monthly or lifetime, matching what you paid). 💎"
}

func ReceiptReceived() string {
	return "📤 <b>Got your screenshot.</b>\n" +
		"The admin will review it and activate your Premium if everything is fine. 💎"
}

func ReceiptForwardCaption(userID int64) string {
	return fmt.Sprintf("📸 <b>Payment screenshot from user:</b> <code>%d</code>", userID)
}

func ReceiptError() string {
	return "⚠️ Something went wrong receiving the screenshot. Try again."
}

func PremiumLocked() string {
	return "🔒 <b>This section is for PREMIUM users only.</b>\n\n" +
		"You unlock daily routines, competitive drops, PC optimization and " +
		"match and skill analysis.\n\n" +
		"Use /premiuminfo or /menu and tap <b>SEE PREMIUM</b> to see the plans."
}

func AIChatLocked() string {
	return "🤖 The advanced AI chat is for <b>PREMIUM users</b> only.\n\n" +
		"Use /premiuminfo or /menu and tap <b>SEE PREMIUM</b> to activate it."
}

func AIUnavailable() string {
	return "⚠️ There was a problem talking to the AI."
}

func PremiumHook() string {
	return "💎 <b>Premium includes:</b>\n" +
		"• Unlimited PRO AI chat\n" +
		"• Daily routines\n" +
		"• Competitive drops\n" +
		"• PC optimization\n" +
		"• Match and skill analysis\n\n" +
		"Use /premiuminfo or /menu and tap <b>SEE PREMIUM</b> to activate it."
}

func ProSensOverview() string {
	return "🧩 <b>Pro sensitivities</b>\n\n" +
		"I can give you the exact sens of several pros (Clix, Bugha, Peterbot, Pollo and more) " +
		"and also build a personalized sens based on theirs.\n\n" +
		"Send me your DPI, resolution and style (aggressive/passive) and I'll tune something for you."
}

func Replay() string {
	return "🎥 <b>Replay / match analysis</b>\n\n" +
		"Send me a message describing:\n" +
		"• Where you dropped\n" +
		"• What loot you had\n" +
		"• Which phase you died in (early / mid / late)\n" +
		"• How many mats you had\n" +
		"• What the opponent did and what you tried\n\n" +
		"I'll explain what you could have done differently and how a PRO plays that spot."
}

func Profile(userID int64, level int, levelName string, xp int, premiumInfo string, referred, bonuses int, referredBy string) string {
	text := "📄 <b>Your competitive profile</b>\n\n" +
		fmt.Sprintf("🆔 ID: <code>%d</code>\n\n", userID) +
		fmt.Sprintf("⭐ Level: %d – <b>%s</b>\n", level, Escape(levelName)) +
		fmt.Sprintf("📈 Total XP: %d\n\n", xp) +
		fmt.Sprintf("💎 Premium status: %s\n\n", Escape(premiumInfo)) +
		fmt.Sprintf("👥 Referrals: %d\n", referred) +
		fmt.Sprintf("🎁 Referral bonuses earned: %d\n", bonuses)
	if referredBy != "" {
		text += fmt.Sprintf("\n🙋 You were referred by ID: <code>%s</code>", Escape(referredBy))
	}
	return text
}

func Referrals(userID int64, referred, bonuses int) string {
	return "🎟 <b>Referral system</b>\n\n" +
		"Share your ID with your friends. When they use it and buy Premium, " +
		"you earn <b>7 days of Premium</b> for each one.\n\n" +
		fmt.Sprintf("🆔 <b>Your referral code:</b> <code>%d</code>\n\n", userID) +
		fmt.Sprintf("👥 Registered referrals: %d\n", referred) +
		fmt.Sprintf("🎁 Bonuses already earned: %d\n\n", bonuses) +
		"Your friends have to use:\n" +
		fmt.Sprintf("<code>/useref %d</code>", userID)
}

func UseRefUsage() string {
	return "Usage: <code>/useref FRIEND_ID</code>"
}

func UseRefSelf() string {
	return "❌ You can't refer yourself."
}

func UseRefAlready() string {
	return "❌ You already registered a referral."
}

func UseRefDone(refID int64) string {
	return fmt.Sprintf("✅ <b>Referral registered.</b>\n"+
		"When you activate Premium, user <code>%d</code> earns 7 bonus days. 🎁", refID)
}

func ReferralBonus() string {
	return "🎁 <b>Referral bonus!</b>\n\n" +
		"Someone you invited just activated Premium.\n" +
		"You earned <b>7 extra days of Premium</b>. 🔥"
}

func CodeUsage(code string) string {
	return fmt.Sprintf("Usage: <code>/code %s</code>", Escape(code))
}

func CodeNoDiscount() string {
	return "❌ No discount is active right now.\n" +
		"The next one appears automatically on the <b>1st of every month</b>."
}

func CodeInvalid() string {
	return "❌ Invalid code."
}

func CodeValid(code string, percent int, finalPrice float64, expiresAt time.Time) string {
	return fmt.Sprintf("🎟 <b>Valid code:</b> <code>%s</code>\n", Escape(code)) +
		fmt.Sprintf("Discount: %d%% on the monthly plan.\n", percent) +
		fmt.Sprintf("💰 Final price: %.2f USD\n", finalPrice) +
		fmt.Sprintf("⏳ Expires: %s\n\n", expiresAt.Format("2006-01-02 15:04")) +
		"Pay here (monthly with the discount applied):\n" +
		fmt.Sprintf("https://paypal.me/botpremiumfort/%.2f", finalPrice)
}

func DiscountAnnouncement(code string, percent int, finalPrice float64) string {
	return "🎉 <b>MONTHLY DISCOUNT ACTIVATED</b>\n\n" +
		"For the next <b>24 hours</b> you can use the code:\n\n" +
		fmt.Sprintf("🎟 Code: <b>%s</b>\n", Escape(code)) +
		fmt.Sprintf("💰 Discount: %d%%\n", percent) +
		fmt.Sprintf("📦 Monthly plan only (5 USD → %.2f USD)\n\n", finalPrice) +
		"🔥 Grab it before it expires.\n\n" +
		"Use the command:\n" +
		fmt.Sprintf("👉 /code %s\n\n", Escape(code)) +
		"Or pay directly here (discount already applied):\n" +
		fmt.Sprintf("➡ https://paypal.me/botpremiumfort/%.2f", finalPrice)
}

func DiscountAdminNotice() string {
	return "📣 The monthly discount was activated and sent to all users."
}

// Admin panel.

func AdminOnly() string {
	return "❌ This command is admin only."
}

func AdminStats(totalUsers, activeStandard, activePlus, activeLifetime, trackedXP int) string {
	return "📊 <b>BOT STATS</b>\n\n" +
		fmt.Sprintf("👥 Total users: %d\n", totalUsers) +
		fmt.Sprintf("💎 Active Premium Standard: %d\n", activeStandard) +
		fmt.Sprintf("💜 Active Premium PLUS: %d\n", activePlus) +
		fmt.Sprintf("🏆 Lifetime Premium (Plus included): %d\n", activeLifetime) +
		fmt.Sprintf("📈 Users with XP on record: %d\n", trackedXP)
}

func AdminPremiumListEmpty() string {
	return "No users in the premium records."
}

func AdminPremiumListHeader() string {
	return "💎 <b>Premium records:</b>\n\n"
}

func AdminBroadcastUsage() string {
	return "Usage: /broadcast message_for_everyone"
}

func AdminBroadcastDone(sent int) string {
	return fmt.Sprintf("Message delivered to %d users.", sent)
}

func AdminCompetitionEmpty() string {
	return "No XP data yet."
}

func AdminCompetitionHeader() string {
	return "🏆 <b>XP COMPETITION RESULTS</b>\n\n"
}

func CompetitionWinner() string {
	return "🏆 <b>Congratulations!</b>\n\n" +
		"You topped the XP competition.\n" +
		"You won <b>7 extra days of Premium</b>. 🔥"
}

func AdminPremiumUsage() string {
	return "Usage:\n" +
		"/premium &lt;id&gt; &lt;days|life&gt;\n\n" +
		"Examples:\n" +
		"/premium 123456789 30   → 30 days\n" +
		"/premium 123456789 life → lifetime"
}

func AdminPremiumPlusUsage() string {
	return "Usage:\n" +
		"/premiumplus &lt;id&gt; &lt;days|life&gt;\n\n" +
		"Examples:\n" +
		"/premiumplus 123456789 30   → 30 days\n" +
		"/premiumplus 123456789 life → lifetime"
}

func AdminGrantLifetimeDone(userID int64, plus bool) string {
	if plus {
		return fmt.Sprintf("✅ <b>Lifetime Premium PLUS activated for %d</b> 🏆", userID)
	}
	return fmt.Sprintf("✅ <b>Lifetime Premium activated for %d</b> 🏆", userID)
}

func AdminGrantDaysDone(userID int64, days int, exp string, plus bool) string {
	label := "Premium"
	if plus {
		label = "Premium PLUS"
	}
	return fmt.Sprintf("✅ <b>%s activated for %d for %d days</b>\n📅 Expires: %s",
		label, userID, days, Escape(exp))
}

func GrantLifetimeNotice() string {
	return "🏆 <b>Your lifetime Premium is active.</b>\n\n" +
		"Full access, FOREVER:\n" +
		"• Unlimited PRO AI\n" +
		"• Daily routines\n" +
		"• Competitive drops\n" +
		"• PC optimization\n" +
		"• Match and skill analysis\n\n" +
		"Start by telling me what you want to improve first. 🔥"
}

func GrantLifetimePlusNotice() string {
	return "💜 <b>Your lifetime Premium PLUS is active.</b>\n\n" +
		"Everything in regular Premium plus priority in warm-ups, " +
		"analysis and support.\n\n" +
		"Start by telling me what you want to improve first. 🔥"
}

func GrantDaysNotice(days int, exp string) string {
	return fmt.Sprintf("💎 <b>Your Premium is active for %d days.</b>\n", days) +
		fmt.Sprintf("📅 Expires: %s\n\n", Escape(exp)) +
		"You can now use the PRO AI chat, routines, competitive drops and more.\n" +
		"Tell me what you want to improve first. 🔥"
}

func GrantDaysPlusNotice(days int, exp string) string {
	return fmt.Sprintf("💜 <b>Your Premium PLUS is active for %d days.</b>\n", days) +
		fmt.Sprintf("📅 Expires: %s\n\n", Escape(exp)) +
		"You get all the PRO content plus priority.\n" +
		"Tell me what you want to improve first. 🔥"
}
