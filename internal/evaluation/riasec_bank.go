package evaluation

type riasecThemeMeta struct {
	Summary     string
	Description string
}

// riasecThemes holds the static theme metadata. Summary feeds the banded
// interpretation sentence; Description is the full paragraph attached to
// top-3 themes.
var riasecThemes = map[Theme]riasecThemeMeta{
	ThemeRealistic: {
		Summary:     "hands-on work with tools, machines and physical materials",
		Description: "Realistic types are doers. They enjoy practical, physical work with tangible results: building, repairing, operating machinery, working outdoors. They value common sense and skill with their hands, and tend toward careers in trades, engineering technology, agriculture and emergency services.",
	},
	ThemeInvestigative: {
		Summary:     "analytical work with ideas, data and scientific problems",
		Description: "Investigative types are thinkers. They are drawn to observing, researching and solving abstract problems, and they value precision, knowledge and intellectual independence. Science, medicine, mathematics, data analysis and research careers fit this theme naturally.",
	},
	ThemeArtistic: {
		Summary:     "creative expression through design, language, music or performance",
		Description: "Artistic types are creators. They seek unstructured settings where imagination and self-expression drive the work: writing, design, music, visual arts, performance. They value originality and aesthetics and resist rigid rules and repetitive routine.",
	},
	ThemeSocial: {
		Summary:     "helping, teaching and caring for other people",
		Description: "Social types are helpers. They thrive on working with and for people: teaching, counseling, caregiving, community work. They value cooperation, service and understanding, and they bring warmth and patience to roles centered on human development and wellbeing.",
	},
	ThemeEnterprising: {
		Summary:     "leading, persuading and building ventures",
		Description: "Enterprising types are persuaders. They enjoy leading people, selling ideas and taking commercial risks, and they are energized by influence, competition and ambitious goals. Management, entrepreneurship, sales, law and politics suit this theme.",
	},
	ThemeConventional: {
		Summary:     "organizing information, systems and well-defined procedures",
		Description: "Conventional types are organizers. They are at their best working with data, records and clear procedures, and they value accuracy, order and reliability. Accounting, administration, logistics and quality assurance reward this theme's precision.",
	},
}

// RiasecBank is the RIASEC question bank, ids 1..48 in theme blocks of 8.
// Id 37 is deliberately absent (a gap inherited from the source dataset), so
// the bank carries 47 items and Enterprising has 7 where the others have 8.
var RiasecBank = []Question{
	{ID: 1, Text: "You would enjoy repairing a broken household appliance.", Tag: "Realistic", Keying: KeyForward},
	{ID: 2, Text: "You would enjoy building furniture from raw lumber.", Tag: "Realistic", Keying: KeyForward},
	{ID: 3, Text: "You would enjoy operating heavy machinery on a work site.", Tag: "Realistic", Keying: KeyForward},
	{ID: 4, Text: "You would enjoy working outdoors maintaining trails or parks.", Tag: "Realistic", Keying: KeyForward},
	{ID: 5, Text: "You would enjoy assembling and tuning a computer or an engine.", Tag: "Realistic", Keying: KeyForward},
	{ID: 6, Text: "You would enjoy installing electrical wiring in a new building.", Tag: "Realistic", Keying: KeyForward},
	{ID: 7, Text: "You would enjoy training a working animal such as a service dog.", Tag: "Realistic", Keying: KeyForward},
	{ID: 8, Text: "You would enjoy piloting a boat, truck or aircraft.", Tag: "Realistic", Keying: KeyForward},
	{ID: 9, Text: "You would enjoy running experiments in a laboratory.", Tag: "Investigative", Keying: KeyForward},
	{ID: 10, Text: "You would enjoy studying why diseases spread through a population.", Tag: "Investigative", Keying: KeyForward},
	{ID: 11, Text: "You would enjoy analyzing a large dataset to find hidden trends.", Tag: "Investigative", Keying: KeyForward},
	{ID: 12, Text: "You would enjoy reading scientific journals in your free time.", Tag: "Investigative", Keying: KeyForward},
	{ID: 13, Text: "You would enjoy developing a mathematical model of a real process.", Tag: "Investigative", Keying: KeyForward},
	{ID: 14, Text: "You would enjoy identifying rocks, plants or stars in the field.", Tag: "Investigative", Keying: KeyForward},
	{ID: 15, Text: "You would enjoy debugging a complicated technical system.", Tag: "Investigative", Keying: KeyForward},
	{ID: 16, Text: "You would enjoy writing a research paper on a topic you chose.", Tag: "Investigative", Keying: KeyForward},
	{ID: 17, Text: "You would enjoy composing or arranging a piece of music.", Tag: "Artistic", Keying: KeyForward},
	{ID: 18, Text: "You would enjoy writing short stories or poetry.", Tag: "Artistic", Keying: KeyForward},
	{ID: 19, Text: "You would enjoy designing a poster, logo or book cover.", Tag: "Artistic", Keying: KeyForward},
	{ID: 20, Text: "You would enjoy acting in a play or a film.", Tag: "Artistic", Keying: KeyForward},
	{ID: 21, Text: "You would enjoy photographing people, places or events artistically.", Tag: "Artistic", Keying: KeyForward},
	{ID: 22, Text: "You would enjoy decorating a room around a theme of your own.", Tag: "Artistic", Keying: KeyForward},
	{ID: 23, Text: "You would enjoy playing in a band or singing in an ensemble.", Tag: "Artistic", Keying: KeyForward},
	{ID: 24, Text: "You would enjoy inventing a character and giving it a voice.", Tag: "Artistic", Keying: KeyForward},
	{ID: 25, Text: "You would enjoy tutoring a struggling student one-on-one.", Tag: "Social", Keying: KeyForward},
	{ID: 26, Text: "You would enjoy helping newcomers settle into a community.", Tag: "Social", Keying: KeyForward},
	{ID: 27, Text: "You would enjoy counseling someone through a difficult period.", Tag: "Social", Keying: KeyForward},
	{ID: 28, Text: "You would enjoy caring for patients recovering from illness.", Tag: "Social", Keying: KeyForward},
	{ID: 29, Text: "You would enjoy organizing activities for children or the elderly.", Tag: "Social", Keying: KeyForward},
	{ID: 30, Text: "You would enjoy teaching a class on a subject you know well.", Tag: "Social", Keying: KeyForward},
	{ID: 31, Text: "You would enjoy mediating a dispute between two friends.", Tag: "Social", Keying: KeyForward},
	{ID: 32, Text: "You would enjoy volunteering for a charity's outreach program.", Tag: "Social", Keying: KeyForward},
	{ID: 33, Text: "You would enjoy pitching a business idea to potential investors.", Tag: "Enterprising", Keying: KeyForward},
	{ID: 34, Text: "You would enjoy negotiating the terms of an important deal.", Tag: "Enterprising", Keying: KeyForward},
	{ID: 35, Text: "You would enjoy managing a team toward an ambitious sales target.", Tag: "Enterprising", Keying: KeyForward},
	{ID: 36, Text: "You would enjoy starting and running your own company.", Tag: "Enterprising", Keying: KeyForward},
	{ID: 38, Text: "You would enjoy campaigning for a cause or a candidate.", Tag: "Enterprising", Keying: KeyForward},
	{ID: 39, Text: "You would enjoy persuading a skeptical audience to change its mind.", Tag: "Enterprising", Keying: KeyForward},
	{ID: 40, Text: "You would enjoy making high-stakes decisions under time pressure.", Tag: "Enterprising", Keying: KeyForward},
	{ID: 41, Text: "You would enjoy keeping precise financial records for an organization.", Tag: "Conventional", Keying: KeyForward},
	{ID: 42, Text: "You would enjoy designing a filing system that others rely on.", Tag: "Conventional", Keying: KeyForward},
	{ID: 43, Text: "You would enjoy checking documents for errors and inconsistencies.", Tag: "Conventional", Keying: KeyForward},
	{ID: 44, Text: "You would enjoy preparing schedules and budgets for a project.", Tag: "Conventional", Keying: KeyForward},
	{ID: 45, Text: "You would enjoy entering and validating data with great accuracy.", Tag: "Conventional", Keying: KeyForward},
	{ID: 46, Text: "You would enjoy administering the day-to-day routines of an office.", Tag: "Conventional", Keying: KeyForward},
	{ID: 47, Text: "You would enjoy auditing processes to make sure rules are followed.", Tag: "Conventional", Keying: KeyForward},
	{ID: 48, Text: "You would enjoy maintaining an inventory down to the last item.", Tag: "Conventional", Keying: KeyForward},
}
