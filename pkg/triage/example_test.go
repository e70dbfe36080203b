package triage_test

import (
	"fmt"

	"github.com/crimson-sun/triage/pkg/triage"
)

func Example() {
	tr := triage.New(triage.WithLexiconPath("../../data/lexicon.txt"))

	a := tr.Assess("Severe chest pain radiating to arm or jaw")

	fmt.Println(a.Severity)
	// Output:
	// Critical
}
