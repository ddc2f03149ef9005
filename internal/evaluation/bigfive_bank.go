package evaluation

var bigFiveTraitNames = map[TraitCode]string{
	TraitO:  "Openness",
	TraitC:  "Conscientiousness",
	TraitE:  "Extraversion",
	TraitA:  "Agreeableness",
	TraitES: "Emotional Stability",
}

// bigFiveDescriptions holds one canned interpretation paragraph per trait and
// level, keyed by trait code and level label.
var bigFiveDescriptions = map[TraitCode]map[string]string{
	TraitO: {
		"Very Low":  "You strongly prefer the familiar and the proven. Routine, tradition and concrete facts feel safer and more useful to you than novelty or abstraction.",
		"Low":       "You lean toward practical, conventional approaches and tend to be skeptical of untested ideas, though you will adapt when change proves its worth.",
		"Moderate":  "You balance curiosity with practicality, open to new experiences when they serve a purpose but comfortable staying with what already works.",
		"High":      "You are curious and imaginative, drawn to new ideas, unfamiliar perspectives and creative pursuits in most areas of your life.",
		"Very High": "You actively seek out novelty, complexity and beauty. Abstract ideas, artistic expression and unconventional viewpoints are central to how you engage with the world.",
	},
	TraitC: {
		"Very Low":  "You resist structure and planning, preferring to act spontaneously and deal with obligations as they arise rather than ahead of time.",
		"Low":       "You work in bursts and keep plans loose, often relying on flexibility and improvisation instead of schedules and checklists.",
		"Moderate":  "You are reasonably organized and reliable, able to follow plans when it matters while tolerating a degree of mess and spontaneity.",
		"High":      "You are disciplined and dependable, setting goals, keeping commitments and paying attention to detail in the things you take on.",
		"Very High": "You are exceptionally organized and driven, holding yourself to exacting standards and rarely leaving anything to chance or half-finished.",
	},
	TraitE: {
		"Very Low":  "You are strongly inward-facing, most comfortable in quiet settings and small doses of company, and you guard your private time carefully.",
		"Low":       "You prefer calm environments and a few close relationships over busy social scenes, engaging with groups selectively.",
		"Moderate":  "You move comfortably between social engagement and solitude, enjoying company without depending on it for energy.",
		"High":      "You are outgoing and energetic, at ease meeting new people and quick to take an active, visible role in groups.",
		"Very High": "You thrive on social stimulation, seeking out people, activity and excitement, and you often become the energizing center of any gathering.",
	},
	TraitA: {
		"Very Low":  "You are hard-edged and competitive, skeptical of others' motives and unafraid of conflict when your interests are at stake.",
		"Low":       "You put your own goals first and speak bluntly, cooperating when it is useful but rarely at your own expense.",
		"Moderate":  "You balance self-interest with consideration for others, cooperative by default but able to push back when needed.",
		"High":      "You are warm, trusting and considerate, inclined to help others and to smooth over friction within a group.",
		"Very High": "You are deeply compassionate and accommodating, placing others' needs on par with or above your own and going far to preserve harmony.",
	},
	TraitES: {
		"Very Low":  "You feel stress and worry intensely and often, and setbacks or criticism can weigh on your mood for a long time.",
		"Low":       "You are emotionally reactive, prone to worry and mood swings under pressure, though you recover with time.",
		"Moderate":  "You experience normal ups and downs, feeling stress in difficult moments but generally regaining your balance quickly.",
		"High":      "You are calm and resilient, rarely rattled by pressure and able to keep a steady mood through most difficulties.",
		"Very High": "You are exceptionally even-keeled, facing stress, uncertainty and criticism with composure that others find steadying.",
	},
}

// BigFiveBank is the Big Five question bank: 10 items per trait, interleaved
// so consecutive questions rotate through the five traits. The second half of
// each trait's items is negatively keyed.
var BigFiveBank = []Question{
	{ID: 1, Text: "You have a vivid imagination.", Tag: "O", Keying: KeyForward},
	{ID: 2, Text: "You are always prepared.", Tag: "C", Keying: KeyForward},
	{ID: 3, Text: "You are the life of the party.", Tag: "E", Keying: KeyForward},
	{ID: 4, Text: "You are genuinely interested in other people.", Tag: "A", Keying: KeyForward},
	{ID: 5, Text: "You are relaxed most of the time.", Tag: "ES", Keying: KeyForward},
	{ID: 6, Text: "You enjoy exploring new and unfamiliar ideas.", Tag: "O", Keying: KeyForward},
	{ID: 7, Text: "You pay attention to details.", Tag: "C", Keying: KeyForward},
	{ID: 8, Text: "You feel comfortable around people.", Tag: "E", Keying: KeyForward},
	{ID: 9, Text: "You sympathize with others' feelings.", Tag: "A", Keying: KeyForward},
	{ID: 10, Text: "You stay calm in tense situations.", Tag: "ES", Keying: KeyForward},
	{ID: 11, Text: "Art and beauty move you deeply.", Tag: "O", Keying: KeyForward},
	{ID: 12, Text: "You get chores done right away.", Tag: "C", Keying: KeyForward},
	{ID: 13, Text: "You start conversations easily.", Tag: "E", Keying: KeyForward},
	{ID: 14, Text: "You take time out for others.", Tag: "A", Keying: KeyForward},
	{ID: 15, Text: "You seldom feel blue.", Tag: "ES", Keying: KeyForward},
	{ID: 16, Text: "You enjoy thinking about abstract concepts.", Tag: "O", Keying: KeyForward},
	{ID: 17, Text: "You follow a schedule.", Tag: "C", Keying: KeyForward},
	{ID: 18, Text: "You talk to many different people at social events.", Tag: "E", Keying: KeyForward},
	{ID: 19, Text: "You have a soft heart.", Tag: "A", Keying: KeyForward},
	{ID: 20, Text: "You rarely get irritated.", Tag: "ES", Keying: KeyForward},
	{ID: 21, Text: "You enjoy trying food from unfamiliar cuisines.", Tag: "O", Keying: KeyForward},
	{ID: 22, Text: "You are exacting in your work.", Tag: "C", Keying: KeyForward},
	{ID: 23, Text: "You do not mind being the center of attention.", Tag: "E", Keying: KeyForward},
	{ID: 24, Text: "You make people feel at ease.", Tag: "A", Keying: KeyForward},
	{ID: 25, Text: "You feel secure about the future.", Tag: "ES", Keying: KeyForward},
	{ID: 26, Text: "You avoid philosophical discussions.", Tag: "O", Keying: KeyReverse},
	{ID: 27, Text: "You leave your belongings lying around.", Tag: "C", Keying: KeyReverse},
	{ID: 28, Text: "You do not talk a lot.", Tag: "E", Keying: KeyReverse},
	{ID: 29, Text: "You are not really interested in others' problems.", Tag: "A", Keying: KeyReverse},
	{ID: 30, Text: "You get stressed out easily.", Tag: "ES", Keying: KeyReverse},
	{ID: 31, Text: "You prefer routine over variety.", Tag: "O", Keying: KeyReverse},
	{ID: 32, Text: "You often forget to put things back in their proper place.", Tag: "C", Keying: KeyReverse},
	{ID: 33, Text: "You keep in the background.", Tag: "E", Keying: KeyReverse},
	{ID: 34, Text: "You feel little concern for strangers.", Tag: "A", Keying: KeyReverse},
	{ID: 35, Text: "You worry about things.", Tag: "ES", Keying: KeyReverse},
	{ID: 36, Text: "You have difficulty understanding abstract ideas.", Tag: "O", Keying: KeyReverse},
	{ID: 37, Text: "You make a mess of things.", Tag: "C", Keying: KeyReverse},
	{ID: 38, Text: "You have little to say in group settings.", Tag: "E", Keying: KeyReverse},
	{ID: 39, Text: "You find it hard to forgive people who wrong you.", Tag: "A", Keying: KeyReverse},
	{ID: 40, Text: "You are easily disturbed.", Tag: "ES", Keying: KeyReverse},
	{ID: 41, Text: "You are not interested in art.", Tag: "O", Keying: KeyReverse},
	{ID: 42, Text: "You shirk your duties.", Tag: "C", Keying: KeyReverse},
	{ID: 43, Text: "You do not like to draw attention to yourself.", Tag: "E", Keying: KeyReverse},
	{ID: 44, Text: "You tend to criticize others harshly.", Tag: "A", Keying: KeyReverse},
	{ID: 45, Text: "You change your mood a lot.", Tag: "ES", Keying: KeyReverse},
	{ID: 46, Text: "You dislike changes to the way things have always been done.", Tag: "O", Keying: KeyReverse},
	{ID: 47, Text: "You start tasks and leave them unfinished.", Tag: "C", Keying: KeyReverse},
	{ID: 48, Text: "You are quiet around strangers.", Tag: "E", Keying: KeyReverse},
	{ID: 49, Text: "You put your own needs ahead of everyone else's.", Tag: "A", Keying: KeyReverse},
	{ID: 50, Text: "You get upset easily.", Tag: "ES", Keying: KeyReverse},
}
