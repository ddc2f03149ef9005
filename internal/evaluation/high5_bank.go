package evaluation

// high5StrengthMeta is the static enrichment shown for top-5 strengths.
type high5StrengthMeta struct {
	Domain             StrengthDomain
	Description        string
	CoreCharacteristic string
	Energizers         string
	Drainers           string
}

// high5StrengthOrder is the bank's strength order; stable-sort ties in the
// ranking resolve to this order.
var high5StrengthOrder = []string{
	"Believer",
	"Deliverer",
	"Focus Expert",
	"Problem Solver",
	"Time Keeper",
	"Chameleon",
	"Coach",
	"Empathizer",
	"Optimist",
	"Peace Keeper",
	"Catalyst",
	"Commander",
	"Self-Believer",
	"Storyteller",
	"Winner",
	"Analyst",
	"Brainstormer",
	"Philomath",
	"Strategist",
	"Thinker",
}

var high5Strengths = map[string]high5StrengthMeta{
	"Believer": {
		Domain:             DomainDoing,
		Description:        "Values-driven and purposeful, you anchor your work and relationships in firm principles.",
		CoreCharacteristic: "unwavering commitment to core values",
		Energizers:         "work aligned with a meaningful mission; being trusted to do the right thing",
		Drainers:           "tasks that conflict with your principles; environments that treat values as negotiable",
	},
	"Deliverer": {
		Domain:             DomainDoing,
		Description:        "Dependable and accountable, you treat every commitment as a personal contract.",
		CoreCharacteristic: "ownership of promises made",
		Energizers:         "clear commitments you can see through to the end; being relied upon",
		Drainers:           "broken promises around you; vague responsibilities with no owner",
	},
	"Focus Expert": {
		Domain:             DomainDoing,
		Description:        "Concentrated and goal-directed, you filter out noise and drive toward a defined target.",
		CoreCharacteristic: "sustained concentration on chosen priorities",
		Energizers:         "clear goals and uninterrupted time to pursue them",
		Drainers:           "constant context switching; fuzzy or shifting objectives",
	},
	"Problem Solver": {
		Domain:             DomainDoing,
		Description:        "Diagnostic and persistent, you are drawn to breakdowns and will not rest until the cause is found.",
		CoreCharacteristic: "appetite for untangling what is broken",
		Energizers:         "hard puzzles and root-cause hunts; fixing what others gave up on",
		Drainers:           "shallow patches over recurring issues; problems declared unsolvable",
	},
	"Time Keeper": {
		Domain:             DomainDoing,
		Description:        "Punctual and structured, you treat time as the scarcest resource and manage it deliberately.",
		CoreCharacteristic: "disciplined control of time and deadlines",
		Energizers:         "well-planned schedules; finishing ahead of deadlines",
		Drainers:           "chronic lateness in others; open-ended work with no time frame",
	},
	"Chameleon": {
		Domain:             DomainFeeling,
		Description:        "Adaptable and present-focused, you flex easily when circumstances change.",
		CoreCharacteristic: "ease with change and the unexpected",
		Energizers:         "variety, surprises and evolving situations",
		Drainers:           "rigid routines; long-range plans that leave no room to adjust",
	},
	"Coach": {
		Domain:             DomainFeeling,
		Description:        "Developmental and patient, you grow people the way gardeners grow plants.",
		CoreCharacteristic: "investment in other people's growth",
		Energizers:         "mentoring someone through visible progress; teaching moments",
		Drainers:           "people who refuse to develop; environments that ignore potential",
	},
	"Empathizer": {
		Domain:             DomainFeeling,
		Description:        "Perceptive and warm, you read emotions accurately and respond with care.",
		CoreCharacteristic: "intuitive grasp of others' feelings",
		Energizers:         "deep one-on-one conversations; moments where understanding matters",
		Drainers:           "emotionally blind environments; being asked to ignore how people feel",
	},
	"Optimist": {
		Domain:             DomainFeeling,
		Description:        "Positive and generous with praise, you inject lightness and possibility into any situation.",
		CoreCharacteristic: "contagious positive outlook",
		Energizers:         "celebrating wins; turning dull tasks into enjoyable ones",
		Drainers:           "persistent negativity; cynicism presented as realism",
	},
	"Peace Keeper": {
		Domain:             DomainFeeling,
		Description:        "Diplomatic and steady, you reduce friction and search for agreement.",
		CoreCharacteristic: "drive toward consensus and calm",
		Energizers:         "mediating disputes to a fair resolution; cooperative teams",
		Drainers:           "prolonged conflict; zero-sum arguments",
	},
	"Catalyst": {
		Domain:             DomainMotivating,
		Description:        "Action-oriented and impatient for movement, you convert talk into progress.",
		CoreCharacteristic: "urge to set things in motion",
		Energizers:         "green lights, fresh starts and visible momentum",
		Drainers:           "endless deliberation; waiting for perfect conditions",
	},
	"Commander": {
		Domain:             DomainMotivating,
		Description:        "Direct and decisive, you step into the lead when others hesitate.",
		CoreCharacteristic: "readiness to take charge and speak plainly",
		Energizers:         "crises needing a decision-maker; candid exchanges",
		Drainers:           "passive-aggressive environments; decisions by endless committee",
	},
	"Self-Believer": {
		Domain:             DomainMotivating,
		Description:        "Confident and self-directed, you run on an internal compass.",
		CoreCharacteristic: "trust in your own judgement",
		Energizers:         "autonomy and room to act on your own calls",
		Drainers:           "micromanagement; having to justify every step",
	},
	"Storyteller": {
		Domain:             DomainMotivating,
		Description:        "Expressive and engaging, you make ideas vivid and memorable.",
		CoreCharacteristic: "power to captivate through narrative",
		Energizers:         "audiences, presentations and lively exchanges",
		Drainers:           "dry recitation of facts; having no one to share ideas with",
	},
	"Winner": {
		Domain:             DomainMotivating,
		Description:        "Competitive and measuring, you turn effort into contests and play to win.",
		CoreCharacteristic: "drive to outperform",
		Energizers:         "rankings, rivals and clear ways to keep score",
		Drainers:           "contests with no winner; environments that hide performance",
	},
	"Analyst": {
		Domain:             DomainThinking,
		Description:        "Rigorous and objective, you insist that claims survive contact with the data.",
		CoreCharacteristic: "demand for evidence and sound logic",
		Energizers:         "datasets to interrogate; arguments settled by facts",
		Drainers:           "decisions by gut feel alone; sloppy reasoning",
	},
	"Brainstormer": {
		Domain:             DomainThinking,
		Description:        "Generative and associative, you produce ideas in volume and delight in novel connections.",
		CoreCharacteristic: "fast, abundant idea generation",
		Energizers:         "open problems and blank whiteboards; cross-domain connections",
		Drainers:           "idea-killing phrases; rigid adherence to the one known way",
	},
	"Philomath": {
		Domain:             DomainThinking,
		Description:        "Curious and absorbing, you collect knowledge for the joy of it.",
		CoreCharacteristic: "love of learning itself",
		Energizers:         "new subjects, courses and books; stretching into the unknown",
		Drainers:           "stagnant routines; knowing everything your role requires",
	},
	"Strategist": {
		Domain:             DomainThinking,
		Description:        "Forward-seeing and selective, you cut through complexity to the route that matters.",
		CoreCharacteristic: "vision of paths others miss",
		Energizers:         "complex situations needing a plan; what-if exploration",
		Drainers:           "short-sighted firefighting; plans made move by move",
	},
	"Thinker": {
		Domain:             DomainThinking,
		Description:        "Reflective and deep, your inner dialogue is where your best work begins.",
		CoreCharacteristic: "rich inner intellectual life",
		Energizers:         "time to muse before deciding; conversations with depth",
		Drainers:           "forced snap judgements; environments hostile to reflection",
	},
}

// High5Bank is the HIGH5 question bank: 6 items per strength, interleaved so
// each block of 20 questions covers every strength once. No item is
// reverse-keyed; all statements are positively phrased.
var High5Bank = []Question{
	{ID: 1, Text: "Your core values guide nearly every decision you make.", Tag: "Believer", Keying: KeyForward},
	{ID: 2, Text: "When you commit to something, people can consider it done.", Tag: "Deliverer", Keying: KeyForward},
	{ID: 3, Text: "You can work on a single task for hours without being distracted.", Tag: "Focus Expert", Keying: KeyForward},
	{ID: 4, Text: "Broken things and stuck situations draw you in rather than put you off.", Tag: "Problem Solver", Keying: KeyForward},
	{ID: 5, Text: "You are known for always being on time.", Tag: "Time Keeper", Keying: KeyForward},
	{ID: 6, Text: "You adjust quickly when plans change at the last minute.", Tag: "Chameleon", Keying: KeyForward},
	{ID: 7, Text: "You get satisfaction from seeing other people grow.", Tag: "Coach", Keying: KeyForward},
	{ID: 8, Text: "You sense how people feel before they say a word.", Tag: "Empathizer", Keying: KeyForward},
	{ID: 9, Text: "You naturally look for the silver lining in any setback.", Tag: "Optimist", Keying: KeyForward},
	{ID: 10, Text: "You look for common ground whenever a disagreement flares up.", Tag: "Peace Keeper", Keying: KeyForward},
	{ID: 11, Text: "You get restless when a project sits in planning for too long.", Tag: "Catalyst", Keying: KeyForward},
	{ID: 12, Text: "You naturally take charge when a group lacks direction.", Tag: "Commander", Keying: KeyForward},
	{ID: 13, Text: "You trust your own judgement even when others disagree.", Tag: "Self-Believer", Keying: KeyForward},
	{ID: 14, Text: "You can make almost any topic entertaining to listen to.", Tag: "Storyteller", Keying: KeyForward},
	{ID: 15, Text: "You compare your performance against others almost automatically.", Tag: "Winner", Keying: KeyForward},
	{ID: 16, Text: "You ask for the data before you accept a claim.", Tag: "Analyst", Keying: KeyForward},
	{ID: 17, Text: "New ideas come to you faster than you can write them down.", Tag: "Brainstormer", Keying: KeyForward},
	{ID: 18, Text: "You are always in the middle of learning something new.", Tag: "Philomath", Keying: KeyForward},
	{ID: 19, Text: "You quickly see a path through complicated situations.", Tag: "Strategist", Keying: KeyForward},
	{ID: 20, Text: "You need time alone to think things through properly.", Tag: "Thinker", Keying: KeyForward},
	{ID: 21, Text: "You would turn down an attractive opportunity if it clashed with your principles.", Tag: "Believer", Keying: KeyForward},
	{ID: 22, Text: "You feel personally responsible for every promise you make.", Tag: "Deliverer", Keying: KeyForward},
	{ID: 23, Text: "You regularly set priorities and stick to them.", Tag: "Focus Expert", Keying: KeyForward},
	{ID: 24, Text: "You enjoy diagnosing why something went wrong.", Tag: "Problem Solver", Keying: KeyForward},
	{ID: 25, Text: "You plan your days down to specific time slots.", Tag: "Time Keeper", Keying: KeyForward},
	{ID: 26, Text: "New environments feel exciting to you rather than threatening.", Tag: "Chameleon", Keying: KeyForward},
	{ID: 27, Text: "You notice potential in people that they do not see themselves.", Tag: "Coach", Keying: KeyForward},
	{ID: 28, Text: "Other people's moods affect you deeply.", Tag: "Empathizer", Keying: KeyForward},
	{ID: 29, Text: "Your enthusiasm lifts the mood of the people around you.", Tag: "Optimist", Keying: KeyForward},
	{ID: 30, Text: "Conflict around you makes you want to mediate, not take sides.", Tag: "Peace Keeper", Keying: KeyForward},
	{ID: 31, Text: "You are usually the one who gets things moving.", Tag: "Catalyst", Keying: KeyForward},
	{ID: 32, Text: "Stating an unpopular opinion does not scare you.", Tag: "Commander", Keying: KeyForward},
	{ID: 33, Text: "You rarely need outside validation to feel sure of yourself.", Tag: "Self-Believer", Keying: KeyForward},
	{ID: 34, Text: "People remember the way you present ideas.", Tag: "Storyteller", Keying: KeyForward},
	{ID: 35, Text: "Competition brings out your best effort.", Tag: "Winner", Keying: KeyForward},
	{ID: 36, Text: "Emotional arguments rarely convince you on their own.", Tag: "Analyst", Keying: KeyForward},
	{ID: 37, Text: "You enjoy finding connections between seemingly unrelated things.", Tag: "Brainstormer", Keying: KeyForward},
	{ID: 38, Text: "The process of learning excites you more than the credential at the end.", Tag: "Philomath", Keying: KeyForward},
	{ID: 39, Text: "You think several moves ahead before acting.", Tag: "Strategist", Keying: KeyForward},
	{ID: 40, Text: "You enjoy intellectual discussions that go beneath the surface.", Tag: "Thinker", Keying: KeyForward},
	{ID: 41, Text: "Work feels meaningful to you only when it serves a larger purpose.", Tag: "Believer", Keying: KeyForward},
	{ID: 42, Text: "Missing a deadline you agreed to would genuinely upset you.", Tag: "Deliverer", Keying: KeyForward},
	{ID: 43, Text: "Interruptions frustrate you because they break your concentration.", Tag: "Focus Expert", Keying: KeyForward},
	{ID: 44, Text: "Colleagues bring you their hardest problems to untangle.", Tag: "Problem Solver", Keying: KeyForward},
	{ID: 45, Text: "You can estimate accurately how long a task will take.", Tag: "Time Keeper", Keying: KeyForward},
	{ID: 46, Text: "You can fit in comfortably with very different groups of people.", Tag: "Chameleon", Keying: KeyForward},
	{ID: 47, Text: "You invest time in helping others develop their skills.", Tag: "Coach", Keying: KeyForward},
	{ID: 48, Text: "People confide in you because they feel understood.", Tag: "Empathizer", Keying: KeyForward},
	{ID: 49, Text: "You believe most problems will eventually be resolved.", Tag: "Optimist", Keying: KeyForward},
	{ID: 50, Text: "You would rather find consensus than win an argument.", Tag: "Peace Keeper", Keying: KeyForward},
	{ID: 51, Text: "Starting something new energizes you more than polishing something old.", Tag: "Catalyst", Keying: KeyForward},
	{ID: 52, Text: "People look to you for decisions in a crisis.", Tag: "Commander", Keying: KeyForward},
	{ID: 53, Text: "Setbacks do not shake your confidence in your abilities.", Tag: "Self-Believer", Keying: KeyForward},
	{ID: 54, Text: "You enjoy having an audience.", Tag: "Storyteller", Keying: KeyForward},
	{ID: 55, Text: "Second place feels like losing to you.", Tag: "Winner", Keying: KeyForward},
	{ID: 56, Text: "You enjoy digging into numbers to find what they really say.", Tag: "Analyst", Keying: KeyForward},
	{ID: 57, Text: "Routine thinking bores you.", Tag: "Brainstormer", Keying: KeyForward},
	{ID: 58, Text: "You read about topics that have no practical use for you yet.", Tag: "Philomath", Keying: KeyForward},
	{ID: 59, Text: "Spotting patterns amid complexity comes naturally to you.", Tag: "Strategist", Keying: KeyForward},
	{ID: 60, Text: "You often replay ideas in your head long after a conversation ends.", Tag: "Thinker", Keying: KeyForward},
	{ID: 61, Text: "People know exactly what you stand for.", Tag: "Believer", Keying: KeyForward},
	{ID: 62, Text: "Others trust you with tasks they cannot afford to see dropped.", Tag: "Deliverer", Keying: KeyForward},
	{ID: 63, Text: "You finish what you start before picking up something new.", Tag: "Focus Expert", Keying: KeyForward},
	{ID: 64, Text: "Finding the root cause matters more to you than applying a quick fix.", Tag: "Problem Solver", Keying: KeyForward},
	{ID: 65, Text: "Deadlines feel like firm commitments to you, never suggestions.", Tag: "Time Keeper", Keying: KeyForward},
	{ID: 66, Text: "Sudden changes of direction rarely throw you off balance.", Tag: "Chameleon", Keying: KeyForward},
	{ID: 67, Text: "Giving useful feedback comes naturally to you.", Tag: "Coach", Keying: KeyForward},
	{ID: 68, Text: "You instinctively know the right thing to say in emotional moments.", Tag: "Empathizer", Keying: KeyForward},
	{ID: 69, Text: "You find ways to make routine work enjoyable.", Tag: "Optimist", Keying: KeyForward},
	{ID: 70, Text: "People call on you to calm heated situations.", Tag: "Peace Keeper", Keying: KeyForward},
	{ID: 71, Text: "You push groups from talking to doing.", Tag: "Catalyst", Keying: KeyForward},
	{ID: 72, Text: "You are comfortable confronting others when something is wrong.", Tag: "Commander", Keying: KeyForward},
	{ID: 73, Text: "You are comfortable making decisions without asking for permission.", Tag: "Self-Believer", Keying: KeyForward},
	{ID: 74, Text: "You naturally reach for anecdotes and images to explain things.", Tag: "Storyteller", Keying: KeyForward},
	{ID: 75, Text: "You turn everyday activities into contests.", Tag: "Winner", Keying: KeyForward},
	{ID: 76, Text: "You spot logical flaws in reasoning quickly.", Tag: "Analyst", Keying: KeyForward},
	{ID: 77, Text: "You generate several alternatives for any problem put in front of you.", Tag: "Brainstormer", Keying: KeyForward},
	{ID: 78, Text: "You would take a course purely out of curiosity.", Tag: "Philomath", Keying: KeyForward},
	{ID: 79, Text: "You discard weak options fast and focus on the few that matter.", Tag: "Strategist", Keying: KeyForward},
	{ID: 80, Text: "Reflection before action is your default mode.", Tag: "Thinker", Keying: KeyForward},
	{ID: 81, Text: "You stay committed to causes long after others have moved on.", Tag: "Believer", Keying: KeyForward},
	{ID: 82, Text: "You follow through even when nobody is checking on you.", Tag: "Deliverer", Keying: KeyForward},
	{ID: 83, Text: "Clear goals make you noticeably more productive.", Tag: "Focus Expert", Keying: KeyForward},
	{ID: 84, Text: "You feel energized when a puzzling issue finally yields.", Tag: "Problem Solver", Keying: KeyForward},
	{ID: 85, Text: "Wasting time bothers you more than wasting money.", Tag: "Time Keeper", Keying: KeyForward},
	{ID: 86, Text: "You prefer living in the moment over following a fixed script.", Tag: "Chameleon", Keying: KeyForward},
	{ID: 87, Text: "You celebrate others' progress as if it were your own.", Tag: "Coach", Keying: KeyForward},
	{ID: 88, Text: "You often imagine situations from other people's positions.", Tag: "Empathizer", Keying: KeyForward},
	{ID: 89, Text: "People describe you as someone who radiates positive energy.", Tag: "Optimist", Keying: KeyForward},
	{ID: 90, Text: "You weigh everyone's views before pushing your own.", Tag: "Peace Keeper", Keying: KeyForward},
	{ID: 91, Text: "Momentum matters more to you than perfection.", Tag: "Catalyst", Keying: KeyForward},
	{ID: 92, Text: "You say directly what others only hint at.", Tag: "Commander", Keying: KeyForward},
	{ID: 93, Text: "You see yourself as capable of handling whatever comes.", Tag: "Self-Believer", Keying: KeyForward},
	{ID: 94, Text: "Hosting and presenting come easily to you.", Tag: "Storyteller", Keying: KeyForward},
	{ID: 95, Text: "Scoreboards and rankings motivate you strongly.", Tag: "Winner", Keying: KeyForward},
	{ID: 96, Text: "Objectivity matters to you more than enthusiasm.", Tag: "Analyst", Keying: KeyForward},
	{ID: 97, Text: "People come to you when they need a fresh angle.", Tag: "Brainstormer", Keying: KeyForward},
	{ID: 98, Text: "Staying inside the same body of knowledge too long makes you restless.", Tag: "Philomath", Keying: KeyForward},
	{ID: 99, Text: "You enjoy planning for different scenarios.", Tag: "Strategist", Keying: KeyForward},
	{ID: 100, Text: "You ask yourself questions that have no easy answers.", Tag: "Thinker", Keying: KeyForward},
	{ID: 101, Text: "Compromising your beliefs for convenience feels impossible to you.", Tag: "Believer", Keying: KeyForward},
	{ID: 102, Text: "An unfinished commitment stays on your mind until it is closed.", Tag: "Deliverer", Keying: KeyForward},
	{ID: 103, Text: "You find it easy to ignore things that are not relevant to your objective.", Tag: "Focus Expert", Keying: KeyForward},
	{ID: 104, Text: "Troubleshooting feels like a game to you.", Tag: "Problem Solver", Keying: KeyForward},
	{ID: 105, Text: "You structure your work so that nothing is left to the last minute.", Tag: "Time Keeper", Keying: KeyForward},
	{ID: 106, Text: "Others are surprised by how easily you handle the unexpected.", Tag: "Chameleon", Keying: KeyForward},
	{ID: 107, Text: "People seek you out when they want to improve at something.", Tag: "Coach", Keying: KeyForward},
	{ID: 108, Text: "You pick up on tension in a room the moment you enter.", Tag: "Empathizer", Keying: KeyForward},
	{ID: 109, Text: "Even under pressure you keep a hopeful outlook.", Tag: "Optimist", Keying: KeyForward},
	{ID: 110, Text: "Harmony in a group matters more to you than being proven right.", Tag: "Peace Keeper", Keying: KeyForward},
	{ID: 111, Text: "Waiting for complete information before acting feels like a waste to you.", Tag: "Catalyst", Keying: KeyForward},
	{ID: 112, Text: "Taking responsibility for a tough call feels natural to you.", Tag: "Commander", Keying: KeyForward},
	{ID: 113, Text: "Independence matters more to you than approval.", Tag: "Self-Believer", Keying: KeyForward},
	{ID: 114, Text: "You know how to hold a room's attention.", Tag: "Storyteller", Keying: KeyForward},
	{ID: 115, Text: "You work hardest when someone is ahead of you.", Tag: "Winner", Keying: KeyForward},
	{ID: 116, Text: "You like to quantify things other people only describe.", Tag: "Analyst", Keying: KeyForward},
	{ID: 117, Text: "An open-ended what-if question can occupy you for hours.", Tag: "Brainstormer", Keying: KeyForward},
	{ID: 118, Text: "People describe you as endlessly curious.", Tag: "Philomath", Keying: KeyForward},
	{ID: 119, Text: "Others rely on you to see the bigger picture.", Tag: "Strategist", Keying: KeyForward},
	{ID: 120, Text: "A day without time to think feels incomplete to you.", Tag: "Thinker", Keying: KeyForward},
}
