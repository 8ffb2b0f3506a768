// Package form models the player entry form: the static field registry,
// the mutable form state, the input guard, and the validation engine.
package form

// Kind classifies a field's value domain.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindDecimal
	KindEnum
)

// Section identifies the visual group a field belongs to. The basic section
// is always visible; the three stat sections are mutually exclusive tabs.
type Section int

const (
	SectionBasic Section = iota
	SectionBatting
	SectionBowling
	SectionFielding
)

// String returns the display title of a section.
func (s Section) String() string {
	switch s {
	case SectionBasic:
		return "Basic Information"
	case SectionBatting:
		return "Batting Statistics"
	case SectionBowling:
		return "Bowling Statistics"
	case SectionFielding:
		return "Fielding & Performance"
	default:
		return "Unknown"
	}
}

// Field is the immutable descriptor of one form input. Min/Max are display
// hints only; validation checks presence, not range (matching the service's
// own permissiveness).
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	Section  Section
	Min      float64
	Max      float64
	HasMax   bool
	Options  []string // allowed values for KindEnum
	Default  string
}

// Enumerated value domains, exactly as the prediction service expects them.
var (
	Roles         = []string{"Batsman", "Bowler", "All-Rounder", "Wicket-Keeper"}
	Countries     = []string{"India", "Australia", "England", "South Africa", "New Zealand", "West Indies", "Pakistan", "Sri Lanka", "Bangladesh", "Afghanistan"}
	BattingStyles = []string{"Right-Hand", "Left-Hand"}
	BowlingStyles = []string{"Right-Arm Fast", "Left-Arm Fast", "Right-Arm Medium", "Left-Arm Medium", "Right-Arm Spin", "Left-Arm Spin", "Leg-Spin", "Off-Spin"}
)

// registry is the compiled-in field table. Enumerated fields carry a default
// and therefore can never be empty, so they are not part of the required set;
// required-ness covers the numeric fields the service demands.
var registry = []Field{
	{Name: "player_name", Label: "Player Name", Kind: KindText, Section: SectionBasic},
	{Name: "age", Label: "Age", Kind: KindInteger, Required: true, Section: SectionBasic, Min: 18, Max: 40, HasMax: true},
	{Name: "role", Label: "Role", Kind: KindEnum, Section: SectionBasic, Options: Roles, Default: "Batsman"},
	{Name: "country", Label: "Country", Kind: KindEnum, Section: SectionBasic, Options: Countries, Default: "India"},
	{Name: "batting_style", Label: "Batting Style", Kind: KindEnum, Section: SectionBasic, Options: BattingStyles, Default: "Right-Hand"},
	{Name: "bowling_style", Label: "Bowling Style", Kind: KindEnum, Section: SectionBasic, Options: BowlingStyles, Default: "Right-Arm Fast"},
	{Name: "domestic_matches", Label: "Domestic Matches", Kind: KindInteger, Required: true, Section: SectionBasic},

	{Name: "innings_batted", Label: "Innings Batted", Kind: KindInteger, Required: true, Section: SectionBatting},
	{Name: "runs_scored", Label: "Runs Scored", Kind: KindInteger, Required: true, Section: SectionBatting},
	{Name: "batting_average", Label: "Batting Average", Kind: KindDecimal, Required: true, Section: SectionBatting},
	{Name: "batting_strike_rate", Label: "Strike Rate", Kind: KindDecimal, Required: true, Section: SectionBatting},
	{Name: "hundreds", Label: "Hundreds", Kind: KindInteger, Required: true, Section: SectionBatting},
	{Name: "fifties", Label: "Fifties", Kind: KindInteger, Required: true, Section: SectionBatting},
	{Name: "highest_score", Label: "Highest Score", Kind: KindInteger, Required: true, Section: SectionBatting},
	{Name: "boundary_percentage", Label: "Boundary %", Kind: KindDecimal, Required: true, Section: SectionBatting, Max: 100, HasMax: true},

	{Name: "overs_bowled", Label: "Overs Bowled", Kind: KindDecimal, Required: true, Section: SectionBowling},
	{Name: "wickets_taken", Label: "Wickets Taken", Kind: KindInteger, Required: true, Section: SectionBowling},
	{Name: "bowling_average", Label: "Bowling Average", Kind: KindDecimal, Required: true, Section: SectionBowling},
	{Name: "economy_rate", Label: "Economy Rate", Kind: KindDecimal, Required: true, Section: SectionBowling},
	{Name: "bowling_strike_rate", Label: "Bowling Strike Rate", Kind: KindDecimal, Required: true, Section: SectionBowling},
	{Name: "five_wicket_hauls", Label: "5-Wicket Hauls", Kind: KindInteger, Required: true, Section: SectionBowling},
	{Name: "best_bowling_wickets", Label: "Best Bowling", Kind: KindInteger, Required: true, Section: SectionBowling, Max: 10, HasMax: true},
	{Name: "dot_ball_percentage", Label: "Dot Ball %", Kind: KindDecimal, Required: true, Section: SectionBowling, Max: 100, HasMax: true},

	{Name: "catches", Label: "Catches", Kind: KindInteger, Required: true, Section: SectionFielding},
	{Name: "stumpings", Label: "Stumpings", Kind: KindInteger, Required: true, Section: SectionFielding},
	{Name: "consistency_rating", Label: "Consistency (0-100)", Kind: KindDecimal, Required: true, Section: SectionFielding, Max: 100, HasMax: true},
	{Name: "fitness_score", Label: "Fitness (0-100)", Kind: KindDecimal, Required: true, Section: SectionFielding, Max: 100, HasMax: true},
	{Name: "experience_factor", Label: "Experience (0-100)", Kind: KindDecimal, Required: true, Section: SectionFielding, Max: 100, HasMax: true},
	{Name: "recent_form_rating", Label: "Recent Form (0-100)", Kind: KindDecimal, Required: true, Section: SectionFielding, Max: 100, HasMax: true},
	{Name: "match_winning_performances", Label: "Match-Winning Perf.", Kind: KindInteger, Required: true, Section: SectionFielding},
	{Name: "pressure_handling_score", Label: "Pressure (0-100)", Kind: KindDecimal, Required: true, Section: SectionFielding, Max: 100, HasMax: true},
}

// index is built once from the registry for O(1) lookups.
var index = func() map[string]Field {
	m := make(map[string]Field, len(registry))
	for _, f := range registry {
		m[f.Name] = f
	}
	return m
}()

// Fields returns every field descriptor in declaration order.
func Fields() []Field {
	return registry
}

// Lookup returns the descriptor for name.
func Lookup(name string) (Field, bool) {
	f, ok := index[name]
	return f, ok
}

// IsNumeric reports whether the named field holds a numeric value.
func IsNumeric(name string) bool {
	f, ok := index[name]
	return ok && (f.Kind == KindInteger || f.Kind == KindDecimal)
}

// RequiredFields returns the names of all required fields in declaration order.
func RequiredFields() []string {
	names := make([]string, 0, len(registry))
	for _, f := range registry {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Defaults returns the initial value for every field. Empty string marks
// unset; enumerated fields start on their default option.
func Defaults() map[string]string {
	m := make(map[string]string, len(registry))
	for _, f := range registry {
		m[f.Name] = f.Default
	}
	return m
}

// SectionFields returns the names of the fields in a section, in order.
func SectionFields(s Section) []string {
	var names []string
	for _, f := range registry {
		if f.Section == s {
			names = append(names, f.Name)
		}
	}
	return names
}
