package assessment

// GenericInterpretation is used for any (category, severity) pair without specific text.
const GenericInterpretation = "Your responses suggest you may benefit from further assessment with a healthcare professional."

var interpretations = map[Category]map[Severity]string{
	CategoryDepression: {
		SeverityLow:      "Your responses show few signs of low mood. Keep up the activities that bring you joy.",
		SeverityModerate: "You may be experiencing some symptoms of depression. Talking with someone you trust or your doctor can help.",
		SeverityHigh:     "Your responses suggest significant symptoms of depression. Please consider speaking with your doctor or a mental health professional soon.",
	},
	CategoryAnxiety: {
		SeverityLow:      "You report little worry or nervousness. Relaxation habits can help keep it that way.",
		SeverityModerate: "You may be experiencing moderate anxiety. Breathing exercises and mindfulness may help, and your doctor can offer support.",
		SeverityHigh:     "Your responses suggest high levels of anxiety. A healthcare provider can help you find effective treatment.",
	},
	CategorySleep: {
		SeverityLow:      "Your sleep appears to be in good shape.",
		SeverityModerate: "You may have some sleep difficulties. A regular bedtime routine and less screen time before bed can help.",
		SeverityHigh:     "Your sleep appears to be significantly disrupted. Poor sleep affects health, so consider discussing it with your doctor.",
	},
	CategorySocial: {
		SeverityLow:      "You seem to have good social connections.",
		SeverityModerate: "You may be feeling somewhat isolated. Community groups, classes, or regular calls with family can help.",
		SeverityHigh:     "You may be experiencing significant loneliness. Reaching out to local senior centers or support groups can make a real difference.",
	},
	CategoryGrief: {
		SeverityModerate: "Grief can be a long process. Sharing your feelings with others who understand may help.",
		SeverityHigh:     "Your grief appears to be weighing heavily on you. A grief counselor or support group can offer comfort and guidance.",
	},
	CategoryCognitive: {
		SeverityLow:      "You report few memory concerns.",
		SeverityModerate: "Some forgetfulness is common with age. Memory games and routines can help; mention any changes to your doctor.",
		SeverityHigh:     "You report frequent memory difficulties. Please discuss these with your doctor, who can check for treatable causes.",
	},
	CategoryCrisis: {
		SeverityLow:  "No safety concerns were reported.",
		SeverityHigh: "Please reach out for support right away. Call or text 988, or contact emergency services if you are in immediate danger.",
	},
}

// Interpret returns the interpretation text for a category at a severity.
// Every pair resolves: missing entries fall back to GenericInterpretation.
func Interpret(c Category, s Severity) string {
	if text, ok := interpretations[c][s]; ok {
		return text
	}
	return GenericInterpretation
}
