package domain

// Field names a questionnaire answer. Values double as JSON keys and Redis hash fields.
type Field string

const (
	FieldFocus     Field = "focus"
	FieldEcosystem Field = "ecosystem"
	FieldProject   Field = "project"
	FieldApproach  Field = "approach"
	FieldMotto     Field = "motto"
)

// Question is one step of the questionnaire
type Question struct {
	Field   Field    `json:"field"`
	Title   string   `json:"title"`
	Options []string `json:"options"`
}

// Questions is the ordered questionnaire. Answers outside these option lists are rejected.
var Questions = []Question{
	{
		Field:   FieldFocus,
		Title:   "What's your primary focus in Web3?",
		Options: []string{"Full-stack Development", "Smart Contracts", "Frontend/UX", "Protocol Design"},
	},
	{
		Field:   FieldEcosystem,
		Title:   "Which ecosystem do you primarily build in?",
		Options: []string{"OP Stack", "Ethereum", "Solana", "ZK Stack"},
	},
	{
		Field:   FieldProject,
		Title:   "What type of project interests you most?",
		Options: []string{"DeFi Protocols", "Social dApps", "Infrastructure", "Developer Tools"},
	},
	{
		Field:   FieldApproach,
		Title:   "Your preferred development approach?",
		Options: []string{"Move Fast & Ship", "Security First", "User-Centric", "Research Driven"},
	},
	{
		Field:   FieldMotto,
		Title:   "Which phrase describes you best?",
		Options: []string{"Show, don't tell", "Let's fucking build!", "Still day one", "Just build it"},
	},
}

// Fields returns the questionnaire fields in order.
func Fields() []Field {
	fields := make([]Field, len(Questions))
	for i, q := range Questions {
		fields[i] = q.Field
	}
	return fields
}

// QuestionFor looks up the question asking for field.
func QuestionFor(field Field) (Question, bool) {
	for _, q := range Questions {
		if q.Field == field {
			return q, true
		}
	}
	return Question{}, false
}

// IsValidOption reports whether value is one of field's options.
func IsValidOption(field Field, value string) bool {
	q, ok := QuestionFor(field)
	if !ok {
		return false
	}
	for _, opt := range q.Options {
		if opt == value {
			return true
		}
	}
	return false
}
