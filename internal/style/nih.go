package style

import (
	"fmt"
	"strings"

	"github.com/nakachan-ing/nihref/internal/model"
)

// maxNIHAuthors is the number of names printed before "et al.".
const maxNIHAuthors = 3

// NIH renders "<authors>. <title>. <journal>. <year>;<volume>(<number>):<pages>."
// Absent fields leave their slot empty; the punctuation is always printed.
type NIH struct{}

func (NIH) Name() string { return "nih" }

func (NIH) Render(e model.Entry) (string, error) {
	authors := e.Authors()
	var authorStr string
	if len(authors) > maxNIHAuthors {
		authorStr = strings.Join(authors[:maxNIHAuthors], ", ") + ", et al."
	} else {
		authorStr = strings.Join(authors, ", ")
	}

	title := cleanTitle(e.Field("title"))
	journal := model.Unwrap(e.Field("journal"))
	year := model.Unwrap(e.Field("year"))

	return fmt.Sprintf("%s. %s. %s. %s;%s.", authorStr, title, journal, year, issue(e)), nil
}

// issue builds volume(number):pages from whichever parts are present.
func issue(e model.Entry) string {
	var b strings.Builder
	if volume := model.Unwrap(e.Field("volume")); volume != "" {
		b.WriteString(volume)
	}
	if number := model.Unwrap(e.Field("number")); number != "" {
		b.WriteString("(" + number + ")")
	}
	if p := pages(e); p != "" {
		b.WriteString(":" + p)
	}
	return b.String()
}
