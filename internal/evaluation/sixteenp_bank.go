package evaluation

// PoleMeta describes one pole of a dimension: its single-letter code, the
// preference label and the display description shown in the preferences list.
type PoleMeta struct {
	Code        string
	Label       string
	Description string
}

type sixteenPDimensionMeta struct {
	Name      string
	Dominant  PoleMeta
	Recessive PoleMeta
}

// sixteenPDimensions holds the static per-dimension metadata. The dominant
// pole is the one a score at or above 50 resolves to.
var sixteenPDimensions = map[DimensionCode]sixteenPDimensionMeta{
	DimEI: {
		Name: "Mind",
		Dominant: PoleMeta{
			Code:        "E",
			Label:       "Extraverted",
			Description: "You draw energy from engaging with people and the world around you, and you prefer to think things through out loud.",
		},
		Recessive: PoleMeta{
			Code:        "I",
			Label:       "Introverted",
			Description: "You draw energy from solitude and reflection, and you prefer deep one-on-one exchanges over busy group settings.",
		},
	},
	DimSN: {
		Name: "Energy",
		Dominant: PoleMeta{
			Code:        "S",
			Label:       "Observant",
			Description: "You are grounded in the here and now, trusting direct experience, facts and practical detail over speculation.",
		},
		Recessive: PoleMeta{
			Code:        "N",
			Label:       "Intuitive",
			Description: "You are drawn to possibilities, patterns and ideas, and you look past the surface for hidden meaning.",
		},
	},
	DimTF: {
		Name: "Nature",
		Dominant: PoleMeta{
			Code:        "T",
			Label:       "Thinking",
			Description: "You weigh decisions on logic and consistency, valuing objective truth even when it is uncomfortable.",
		},
		Recessive: PoleMeta{
			Code:        "F",
			Label:       "Feeling",
			Description: "You weigh decisions on people and values, placing harmony and empathy at the center of your judgement.",
		},
	},
	DimJP: {
		Name: "Tactics",
		Dominant: PoleMeta{
			Code:        "J",
			Label:       "Judging",
			Description: "You prefer structure, plans and closure, and you feel at ease once decisions are made and schedules are set.",
		},
		Recessive: PoleMeta{
			Code:        "P",
			Label:       "Prospecting",
			Description: "You prefer flexibility and improvisation, keeping options open and adapting as circumstances change.",
		},
	},
	DimAT: {
		Name: "Identity",
		Dominant: PoleMeta{
			Code:        "A",
			Label:       "Assertive",
			Description: "You are self-assured and even-tempered, resistant to stress and unlikely to dwell on past decisions.",
		},
		Recessive: PoleMeta{
			Code:        "T",
			Label:       "Turbulent",
			Description: "You are self-conscious and success-driven, sensitive to stress and inclined to keep refining what you do.",
		},
	},
}

// SixteenPBank is the 16 Personalities question bank: 7 items per dimension,
// interleaved so consecutive questions rotate through the five dimensions.
var SixteenPBank = []Question{
	{ID: 1, Text: "You feel energized after spending time with a large group of people.", Tag: "EI", Keying: KeyForward},
	{ID: 2, Text: "You focus on concrete facts rather than abstract theories.", Tag: "SN", Keying: KeyForward},
	{ID: 3, Text: "You make decisions with your head rather than your heart.", Tag: "TF", Keying: KeyForward},
	{ID: 4, Text: "You like to have a detailed plan before starting anything.", Tag: "JP", Keying: KeyForward},
	{ID: 5, Text: "You rarely second-guess the choices you have made.", Tag: "AT", Keying: KeyForward},
	{ID: 6, Text: "You need quiet time alone to recharge after social events.", Tag: "EI", Keying: KeyReverse},
	{ID: 7, Text: "You often catch yourself daydreaming about future possibilities.", Tag: "SN", Keying: KeyReverse},
	{ID: 8, Text: "Keeping harmony in a group matters more to you than being right.", Tag: "TF", Keying: KeyReverse},
	{ID: 9, Text: "You prefer to keep your options open rather than commit to a schedule.", Tag: "JP", Keying: KeyReverse},
	{ID: 10, Text: "You worry about how your actions look to other people.", Tag: "AT", Keying: KeyReverse},
	{ID: 11, Text: "You usually start conversations with people you have just met.", Tag: "EI", Keying: KeyForward},
	{ID: 12, Text: "You trust direct experience more than speculation.", Tag: "SN", Keying: KeyForward},
	{ID: 13, Text: "You value objective truth over people's feelings when judging a situation.", Tag: "TF", Keying: KeyForward},
	{ID: 14, Text: "Finishing tasks well before a deadline is important to you.", Tag: "JP", Keying: KeyForward},
	{ID: 15, Text: "You stay calm under pressure.", Tag: "AT", Keying: KeyForward},
	{ID: 16, Text: "You prefer listening over talking in group discussions.", Tag: "EI", Keying: KeyReverse},
	{ID: 17, Text: "You enjoy discussing ideas that may never be practical.", Tag: "SN", Keying: KeyReverse},
	{ID: 18, Text: "You find it easy to put yourself in another person's shoes.", Tag: "TF", Keying: KeyReverse},
	{ID: 19, Text: "You often improvise instead of preparing in advance.", Tag: "JP", Keying: KeyReverse},
	{ID: 20, Text: "Small mistakes can ruin your whole day.", Tag: "AT", Keying: KeyReverse},
	{ID: 21, Text: "You think out loud when working through a problem.", Tag: "EI", Keying: KeyForward},
	{ID: 22, Text: "Step-by-step instructions are more useful to you than broad visions.", Tag: "SN", Keying: KeyForward},
	{ID: 23, Text: "Efficiency matters more to you than sentiment.", Tag: "TF", Keying: KeyForward},
	{ID: 24, Text: "A tidy, organized workspace helps you think.", Tag: "JP", Keying: KeyForward},
	{ID: 25, Text: "You feel confident that things will work out for you.", Tag: "AT", Keying: KeyForward},
	{ID: 26, Text: "Working alone for long stretches suits you well.", Tag: "EI", Keying: KeyReverse},
	{ID: 27, Text: "You notice patterns and hidden meanings before you notice details.", Tag: "SN", Keying: KeyReverse},
	{ID: 28, Text: "Emotional appeals sway you more than statistics.", Tag: "TF", Keying: KeyReverse},
	{ID: 29, Text: "Unexpected changes of plan excite you.", Tag: "JP", Keying: KeyReverse},
	{ID: 30, Text: "You often compare yourself unfavorably to others.", Tag: "AT", Keying: KeyReverse},
	{ID: 31, Text: "You enjoy being the center of attention at gatherings.", Tag: "EI", Keying: KeyForward},
	{ID: 32, Text: "You prefer practical skills over imaginative brainstorming.", Tag: "SN", Keying: KeyForward},
	{ID: 33, Text: "You would rather be respected than liked.", Tag: "TF", Keying: KeyForward},
	{ID: 34, Text: "You make to-do lists and actually follow them.", Tag: "JP", Keying: KeyForward},
	{ID: 35, Text: "Stress rarely disturbs your sleep.", Tag: "AT", Keying: KeyForward},
}
