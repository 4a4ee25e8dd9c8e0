package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Search
	Link
	Show
	Season
	Episode
	Expanded
	Collapsed
	Previous
	Next
	Config
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(×_×)",
		squares: "▣",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔᴥᵔ)",
		squares: "▣",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・_・)…",
		squares: "▢",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(⊙_⊙)",
		squares: "◈",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "~",
		kaomoji: "(￣▽￣)ノ",
		squares: "◇",
	},
	Show: {
		emoji:   "📺",
		nerd:    "",
		plain:   "#",
		kaomoji: "(□_□)",
		squares: "■",
	},
	Season: {
		emoji:   "📂",
		nerd:    "",
		plain:   "+",
		kaomoji: "(^_^)",
		squares: "▤",
	},
	Episode: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "-",
		kaomoji: "(^o^)",
		squares: "▪",
	},
	Expanded: {
		emoji:   "🔽",
		nerd:    "",
		plain:   "v",
		kaomoji: "(v_v)",
		squares: "▼",
	},
	Collapsed: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(>_<)",
		squares: "▶",
	},
	Previous: {
		emoji:   "⬅️",
		nerd:    "",
		plain:   "<",
		kaomoji: "(<_<)",
		squares: "◀",
	},
	Next: {
		emoji:   "➡️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(>_>)",
		squares: "▶",
	},
	Config: {
		emoji:   "⚙️",
		nerd:    "",
		plain:   "*",
		kaomoji: "(-_-)",
		squares: "▦",
	},
}
