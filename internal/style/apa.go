package style

import (
	"strings"

	"github.com/nakachan-ing/nihref/internal/model"
)

// APA renders "Authors (Year). Title. Journal, Volume(Number), Pages."
// Segments whose fields are missing are left out.
type APA struct{}

func (APA) Name() string { return "apa" }

func (APA) Render(e model.Entry) (string, error) {
	var b strings.Builder

	b.WriteString(apaAuthors(e.Authors()))
	year := model.Unwrap(e.Field("year"))
	if year == "" {
		year = "n.d."
	}
	b.WriteString(" (" + year + "). ")

	if title := cleanTitle(e.Field("title")); title != "" {
		b.WriteString(title + ".")
	}

	var source []string
	if journal := model.Unwrap(e.Field("journal")); journal != "" {
		source = append(source, journal)
	} else if booktitle := model.Unwrap(e.Field("booktitle")); booktitle != "" {
		source = append(source, "In "+booktitle)
	} else if publisher := model.Unwrap(e.Field("publisher")); publisher != "" {
		source = append(source, publisher)
	}

	volume := model.Unwrap(e.Field("volume"))
	if number := model.Unwrap(e.Field("number")); number != "" {
		volume += "(" + number + ")"
	}
	if volume != "" {
		source = append(source, volume)
	}
	if p := pages(e); p != "" {
		source = append(source, p)
	}
	if len(source) > 0 {
		b.WriteString(" " + strings.Join(source, ", ") + ".")
	}

	if doi := model.Unwrap(e.Field("doi")); doi != "" {
		b.WriteString(" https://doi.org/" + doi)
	}
	return strings.TrimSpace(b.String()), nil
}

// apaAuthors joins names as "A, B, & C".
func apaAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0]
	case 2:
		return authors[0] + ", & " + authors[1]
	}
	return strings.Join(authors[:len(authors)-1], ", ") + ", & " + authors[len(authors)-1]
}
