package story

// Curated pick-lists shared by the interactive CLI prompts and the web form.
// The lists mirror the creative controls the tool was designed around; callers
// may always supply free-form values instead.

var GenreOptions = []string{
	"Historical fiction",
	"Slice of life",
	"Coming-of-age drama",
	"Mystical realism",
	"Romantic drama",
	"Family saga",
	"Light-hearted comedy",
	"Suspenseful mystery",
}

var StyleOptions = []string{
	"Lyrical third-person narration",
	"Breezy conversational tone",
	"Reflective first-person diary",
	"Playful omniscient narrator",
	"Cinematic present-tense storytelling",
}

var InspirationOptions = []string{
	"Pu La Deshpande's observational humour",
	"Vinda Karandikar's poetic introspection",
	"Durga Bhagwat's reflective essays",
	"Baburao Bagul's gritty realism",
	"Vijay Tendulkar's dramatic structures",
}

// LengthPreset pairs a display label with its target word count.
type LengthPreset struct {
	Label string `json:"label"`
	Words int    `json:"words"`
}

var LengthPresets = []LengthPreset{
	{Label: "Compact vignette (~600 words)", Words: 600},
	{Label: "Standard short story (~900 words)", Words: 900},
	{Label: "Roomy narrative (~1200 words)", Words: 1200},
	{Label: "Epic chaptered tale (~1500 words)", Words: 1500},
}

var ChapterOptions = []int{1, 2, 3, 4, 5}

var PlotTwistOptions = []string{
	"A forgotten family letter reappears",
	"Ancestral secret tied to a festival",
	"Unexpected ally from a rival family",
	"Protagonist misreads an omen",
	"Hidden talent changes the stakes",
	"A rumour masks a deeper truth",
}

var EndingOptions = []string{
	"Bittersweet but hopeful",
	"Triumphant yet grounded",
	"Open-ended contemplation",
	"Poignant reconciliation",
	"Joyful celebration",
}

var ModelOptions = []string{
	"gemini-2.5-flash",
	"gemini-2.0-pro",
	"gemini-2.0-flash",
	"gemini-1.5-pro",
	"gemini-1.5-flash",
}

var TranslationLanguages = []string{"Marathi", "Hindi", "Sanskrit", "English"}

const (
	DefaultModel                  = "gemini-2.5-flash"
	DefaultTemperature            = 0.75
	DefaultTranslationTemperature = 0.35
	DefaultTranslationLanguage    = "Marathi"
)
