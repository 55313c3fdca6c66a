package services

// Rank labels, rendered verbatim by clients.
const (
	RankPlatinum = "🏆 Platinum"
	RankGold     = "🥇 Gold"
	RankSilver   = "🥈 Silver"
	RankBronze   = "🥉 Bronze"
	RankNewbie   = "🎓 Newbie"
)

// RankForCount derives a rank label from the number of completed lessons.
// Thresholds are inclusive lower bounds, evaluated highest first.
func RankForCount(completed int) string {
	switch {
	case completed >= 50:
		return RankPlatinum
	case completed >= 25:
		return RankGold
	case completed >= 10:
		return RankSilver
	case completed >= 3:
		return RankBronze
	default:
		return RankNewbie
	}
}
