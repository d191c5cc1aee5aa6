package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubstituteReplacesMatchedTokens(t *testing.T) {
	vars := map[string]string{"n": "Sam", "city": "Paris"}
	got := Substitute("Hi PLACEHOLDER-n, welcome to PLACEHOLDER-city", vars)
	require.Equal(t, "Hi Sam, welcome to Paris", got)
}

func TestSubstituteRepeatedToken(t *testing.T) {
	vars := map[string]string{"x": "v"}
	got := Substitute("PLACEHOLDER-x and PLACEHOLDER-x", vars)
	require.Equal(t, "v and v", got)
}

func TestSubstituteLeavesUnmatchedVerbatim(t *testing.T) {
	vars := map[string]string{"n": "Sam"}
	got := Substitute("Hi PLACEHOLDER-missing", vars)
	require.Equal(t, "Hi PLACEHOLDER-missing", got)
}

func TestSubstituteNoVars(t *testing.T) {
	got := Substitute("Hi PLACEHOLDER-n", nil)
	require.Equal(t, "Hi PLACEHOLDER-n", got)
}

func TestLabelsForEnglishDefault(t *testing.T) {
	l := LabelsFor("en")
	require.Equal(t, "Previous", l.Previous)
	require.Equal(t, "Next", l.Next)
	require.Equal(t, "End tour", l.End)

	require.Equal(t, l, LabelsFor("de"), "unknown language falls back to English")
}

func TestLabelsForFrench(t *testing.T) {
	l := LabelsFor("fr")
	require.Equal(t, "Retour", l.Previous)
	require.Equal(t, "Suivant", l.Next)
	require.Equal(t, "Terminer le tour", l.End)
}
