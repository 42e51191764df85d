package classify

// Default moderation word list. Matching is plain substring search without
// word boundaries: an entry inside an unrelated word still triggers a flag.
// Moderators clear false positives with the leave button, so the list favors
// recall over precision. Do not make matching boundary-aware without
// re-reviewing moderation outcomes.
var badwords = []string{
	"бля",
	"блядь",
	"блять",
	"сука",
	"суки",
	"сучар",
	"хуй",
	"хуя",
	"хуе",
	"хуё",
	"охуе",
	"нахуй",
	"пизд",
	"ебан",
	"ебал",
	"ебат",
	"ёбан",
	"уебок",
	"уёбок",
	"заеб",
	"заёб",
	"долбоеб",
	"долбоёб",
	"мудак",
	"мудил",
	"мразь",
	"гандон",
	"гондон",
	"пидор",
	"пидар",
	"шлюх",
	"урод",
	"тварь",
	"fuck",
	"shit",
	"bitch",
	"asshole",
	"bastard",
	"cunt",
	"whore",
}
