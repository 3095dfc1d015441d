package injury

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		description string
		want        Type
	}{
		{"out status wins over description", "Out", "ankle sprain", TypeOut},
		{"injured reserve", "Injured Reserve", "", TypeIR},
		{"hammy synonym", "Questionable", "tweaked his hammy in practice", TypeHamstring},
		{"high ankle beats ankle", "Questionable", "high ankle sprain", TypeHighAnkleSprain},
		{"acl tear", "", "torn ACL, season over", TypeACLTear},
		{"concussion protocol", "Questionable", "in the protocol", TypeConcussion},
		{"status fallback when text unmatched", "Doubtful", "undisclosed", TypeDoubtful},
		{"conservative default", "GTD", "coach's decision", TypeQuestionable},
		{"empty everything", "", "", TypeQuestionable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.status, tt.description))
		})
	}
}
