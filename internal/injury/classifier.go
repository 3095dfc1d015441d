package injury

import "strings"

// statusTypes maps normalized feed status text to an injury type
var statusTypes = map[string]Type{
	"out":              TypeOut,
	"o":                TypeOut,
	"ir":               TypeIR,
	"injured reserve":  TypeIR,
	"injured-reserve":  TypeIR,
	"pup":              TypeIR,
	"doubtful":         TypeDoubtful,
	"d":                TypeDoubtful,
	"questionable":     TypeQuestionable,
	"q":                TypeQuestionable,
	"probable":         TypeQuestionable,
	"limited":          TypeQuestionable,
	"dnp":              TypeDoubtful,
	"did not practice": TypeDoubtful,
}

// synonyms maps free-text keywords to named injuries. Checked in order so
// that more specific phrases win over their substrings.
var synonyms = []struct {
	keyword string
	injury  Type
}{
	{"acl", TypeACLTear},
	{"achilles", TypeAchillesTear},
	{"mcl", TypeMCLSprain},
	{"high ankle", TypeHighAnkleSprain},
	{"high-ankle", TypeHighAnkleSprain},
	{"ankle", TypeAnkleSprain},
	{"hammy", TypeHamstring},
	{"hamstring", TypeHamstring},
	{"groin", TypeGroin},
	{"quad", TypeQuad},
	{"quadriceps", TypeQuad},
	{"calf", TypeCalf},
	{"concussion", TypeConcussion},
	{"head", TypeConcussion},
	{"protocol", TypeConcussion},
	{"shoulder", TypeShoulder},
	{"rib", TypeRibs},
	{"back", TypeBack},
	{"knee", TypeKnee},
	{"foot", TypeFoot},
	{"wrist", TypeWrist},
	{"hand", TypeHand},
	{"finger", TypeHand},
	{"thumb", TypeHand},
	{"turf toe", TypeTurfToe},
	{"toe", TypeTurfToe},
	{"hip", TypeHip},
	{"illness", TypeIllness},
	{"flu", TypeIllness},
	{"sick", TypeIllness},
}

// Classify resolves feed status text and free-text description into an
// injury type. The description wins when it names a specific injury, because
// the named profile models recovery better than the bare status. Unmatched
// text falls back to the named status, then to the conservative default.
// Never fails: this is a deliberately lossy adapter at the ingestion boundary.
func Classify(statusText, description string) Type {
	status, statusOK := statusTypes[normalize(statusText)]

	// OUT and IR are absolute: the player does not play regardless of what
	// the description says the underlying injury is.
	if statusOK && (status == TypeOut || status == TypeIR) {
		return status
	}

	desc := normalize(description)
	if desc != "" {
		for _, s := range synonyms {
			if strings.Contains(desc, s.keyword) {
				return s.injury
			}
		}
	}

	if statusOK {
		return status
	}
	return TypeQuestionable
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
