// Package text handles step-text placeholder substitution and the fixed
// button-label table.
package text

import "regexp"

// placeholderRE matches PLACEHOLDER-<name> tokens in step text.
var placeholderRE = regexp.MustCompile(`PLACEHOLDER-([A-Za-z0-9_]+)`)

// Substitute replaces every PLACEHOLDER-<name> token whose name appears in
// vars with the supplied value. Tokens with no matching variable are left
// verbatim.
func Substitute(s string, vars map[string]string) string {
	if len(vars) == 0 {
		return s
	}
	return placeholderRE.ReplaceAllStringFunc(s, func(token string) string {
		name := placeholderRE.FindStringSubmatch(token)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		return token
	})
}

// Labels are the button captions for one language.
type Labels struct {
	Previous string
	Next     string
	End      string
}

var labelTable = map[string]Labels{
	"en": {Previous: "Previous", Next: "Next", End: "End tour"},
	"fr": {Previous: "Retour", Next: "Suivant", End: "Terminer le tour"},
}

// LabelsFor returns the button labels for the given language code.
// Unknown codes fall back to English.
func LabelsFor(language string) Labels {
	if l, ok := labelTable[language]; ok {
		return l
	}
	return labelTable["en"]
}
