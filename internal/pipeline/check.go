package pipeline

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/TheRonzor/data101-s26-slides/internal/region"
)

// autoScriptsRE matches an existing auto-scripts block, markers included.
var autoScriptsRE = regexp.MustCompile(`(?is)` + regexp.QuoteMeta(AutoScriptsBegin) + `.*?` + regexp.QuoteMeta(AutoScriptsEnd))

// CheckFooter verifies contents carries exactly one auto-nav footer.
// Returns ErrMissingFooter when absent, region.ErrAmbiguous when duplicated.
func CheckFooter(contents string) error {
	_, err := region.FindOne(contents, footerRE)
	switch {
	case errors.Is(err, region.ErrNoMatch):
		return ErrMissingFooter
	case err != nil:
		return fmt.Errorf("auto-nav footer: %w", err)
	}
	return nil
}

// CheckBody verifies contents carries exactly one slide-body main region.
// Returns ErrMissingBody when absent, region.ErrAmbiguous when duplicated.
func CheckBody(contents string) error {
	_, err := region.FindOne(contents, mainRE)
	switch {
	case errors.Is(err, region.ErrNoMatch):
		return ErrMissingBody
	case err != nil:
		return fmt.Errorf("slide-body main: %w", err)
	}
	return nil
}

// CheckAutoScripts reports whether contents already carries an auto-scripts
// block. Absent is not an error since the build inserts one; duplicated
// marker pairs are, because the rewrite refuses to pick between them.
func CheckAutoScripts(contents string) (bool, error) {
	_, err := region.FindOne(contents, autoScriptsRE)
	switch {
	case errors.Is(err, region.ErrNoMatch):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("auto-scripts block: %w", err)
	}
	return true, nil
}
