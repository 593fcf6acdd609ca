package eventparse

// Polish is the Polish-locale lexicon. All keys are written in their
// diacritic-folded form, since folding runs before any table lookup.
var Polish = &Lexicon{
	Diacritics: map[rune]rune{
		'ą': 'a',
		'ć': 'c',
		'ę': 'e',
		'ł': 'l',
		'ń': 'n',
		'ó': 'o',
		'ś': 's',
		'ź': 'z',
		'ż': 'z',
	},

	CommandWords: map[string]bool{
		"dodaj":  true,
		"utworz": true,
		"stworz": true,
		"ustaw":  true,
	},

	Cardinals: map[string]string{
		"jeden":          "1",
		"dwa":            "2",
		"trzy":           "3",
		"cztery":         "4",
		"piec":           "5",
		"szesc":          "6",
		"siedem":         "7",
		"osiem":          "8",
		"dziewiec":       "9",
		"dziesiec":       "10",
		"jedenascie":     "11",
		"dwanascie":      "12",
		"trzynascie":     "13",
		"czternascie":    "14",
		"pietnascie":     "15",
		"szesnascie":     "16",
		"siedemnascie":   "17",
		"osiemnascie":    "18",
		"dziewietnascie": "19",
		"dwadziescia":    "20",
		"trzydziesci":    "30",
		"czterdziesci":   "40",
		"piecdziesiat":   "50",
		// Zero-padded digit pairs fold to the bare digit so "05" and the
		// spoken "piec" normalize identically.
		"00": "0",
		"01": "1",
		"02": "2",
		"03": "3",
		"04": "4",
		"05": "5",
		"06": "6",
		"07": "7",
		"08": "8",
		"09": "9",
	},

	TimeRelations: map[string]string{
		"za":        "in",
		"o":         "at",
		"w":         "at",
		"na":        "at",
		"po":        wordAfter,
		"przed":     wordBefore,
		"wczesniej": wordBefore,

		"nastepny":   wordNext,
		"nastepnego": wordNext,
		"nastepnym":  wordNext,
		"nastepna":   wordNext,
		"kolejny":    wordNext,
		"kolejnego":  wordNext,
		"kolejnym":   wordNext,
		"kolejna":    wordNext,

		"ten":       wordThis,
		"tym":       wordThis,
		"obecny":    wordThis,
		"obecnym":   wordThis,
		"biezacy":   wordThis,
		"biezacym":  wordThis,
		"biezacego": wordThis,

		"jutro":    "next day",
		"pojutrze": "day after next day",
	},

	TimeUnits: map[string]string{
		"minuta":   "minute",
		"minute":   "minute",
		"minut":    "minutes",
		"minuty":   "minutes",
		"godzina":  "hour",
		"godzine":  "hour",
		"godzinie": "hour",
		"godziny":  "hours",
		"dzien":    "day",
		"dnia":     "day",
		"dni":      "days",
		"tydzien":  "week",
		"tygodnie": "weeks",
		"miesiac":  "month",
		"miesiace": "months",
	},

	Weekdays: map[string]string{
		"poniedzialek": "monday",
		"wtorek":       "tuesday",
		"sroda":        "wednesday",
		"srode":        "wednesday",
		"czwartek":     "thursday",
		"piatek":       "friday",
		"sobota":       "saturday",
		"sobote":       "saturday",
		"niedziela":    "sunday",
		"niedziele":    "sunday",
	},

	RemindWords: map[string]bool{
		"powiadom":      true,
		"powiadomic":    true,
		"powiadomiony":  true,
		"powiadomieni":  true,
		"zawiadom":      true,
		"zawiadomic":    true,
		"zawiadomiony":  true,
		"zawiadomieni":  true,
		"przypomnienie": true,
		"przypomniec":   true,
		"przypomnij":    true,
	},

	DayPortions: map[string]string{
		"rano":      wordAM,
		"wieczorem": wordPM,
		"poludnie":  wordNoon,
		"poludniu":  wordNoon,
	},

	Months: map[string]string{
		"styczen":      "january",
		"stycznia":     "january",
		"luty":         "february",
		"lutego":       "february",
		"marzec":       "march",
		"marca":        "march",
		"kwiecien":     "april",
		"kwietnia":     "april",
		"maj":          "may",
		"maja":         "may",
		"czerwiec":     "june",
		"czerwca":      "june",
		"lipiec":       "july",
		"lipca":        "july",
		"sierpien":     "august",
		"sierpnia":     "august",
		"wrzesien":     "september",
		"wrzesnia":     "september",
		"pazdziernik":  "october",
		"pazdziernika": "october",
		"listopad":     "november",
		"listopada":    "november",
		"grudzien":     "december",
		"grudnia":      "december",
	},

	// Lowercase on purpose: normalization lowercases the sentence before
	// this table is consulted.
	RomanMonths: map[string]string{
		"i":    "january",
		"ii":   "february",
		"iii":  "march",
		"iv":   "april",
		"v":    "may",
		"vi":   "june",
		"vii":  "july",
		"viii": "august",
		"ix":   "september",
		"x":    "october",
		"xi":   "november",
		"xii":  "december",
	},

	OrdinalsFem: map[string]string{
		"pierwsza":       "1",
		"pierwszej":      "1",
		"druga":          "2",
		"drugiej":        "2",
		"trzecia":        "3",
		"trzeciej":       "3",
		"czwarta":        "4",
		"czwartej":       "4",
		"piata":          "5",
		"piatej":         "5",
		"szosta":         "6",
		"szostej":        "6",
		"siodma":         "7",
		"siodmej":        "7",
		"osma":           "8",
		"osmej":          "8",
		"dziewiata":      "9",
		"dziewiatej":     "9",
		"dziesiata":      "10",
		"dziesiatej":     "10",
		"jedenasta":      "11",
		"jedenastej":     "11",
		"dwunasta":       "12",
		"dwunastej":      "12",
		"trzynasta":      "13",
		"trzynastej":     "13",
		"czternasta":     "14",
		"czternastej":    "14",
		"pietnasta":      "15",
		"pietnastej":     "15",
		"szesnasta":      "16",
		"szesnastej":     "16",
		"siedemnasta":    "17",
		"siedemnastej":   "17",
		"osiemnasta":     "18",
		"osiemnastej":    "18",
		"dziewietnasta":  "19",
		"dziewietnastej": "19",
		"dwudziesta":     "20",
		"dwudziestej":    "20",
	},

	OrdinalsMasc: map[string]string{
		"pierwszy":        "1",
		"pierwszego":      "1",
		"drugi":           "2",
		"drugiego":        "2",
		"trzeci":          "3",
		"trzeciego":       "3",
		"czwarty":         "4",
		"czwartego":       "4",
		"piaty":           "5",
		"piatego":         "5",
		"szosty":          "6",
		"szostego":        "6",
		"siodmy":          "7",
		"siodmego":        "7",
		"osmy":            "8",
		"osmego":          "8",
		"dziewiaty":       "9",
		"dziewiatego":     "9",
		"dziesiaty":       "10",
		"dziesiatego":     "10",
		"jedenasty":       "11",
		"jedenastego":     "11",
		"dwunasty":        "12",
		"dwunastego":      "12",
		"trzynasty":       "13",
		"trzynastego":     "13",
		"czternasty":      "14",
		"czternastego":    "14",
		"pietnasty":       "15",
		"pietnastego":     "15",
		"szesnasty":       "16",
		"szesnastego":     "16",
		"siedemnasty":     "17",
		"siedemnastego":   "17",
		"osiemnasty":      "18",
		"osiemnastego":    "18",
		"dziewietnasty":   "19",
		"dziewietnastego": "19",
		"dwudziesty":      "20",
		"dwudziestego":    "20",
		"trzydziesty":     "30",
		"trzydziestego":   "30",
	},
}
