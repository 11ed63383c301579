package pfr

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Single-match field accessors. Both return "" when nothing matches;
// they never fail.

func QueryFirst(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}

func QueryAttr(doc *goquery.Document, selector, attr string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr(attr, ""))
}

// lastHeaderColumns reads the last thead row of a stats table and
// returns the ordered column identifiers (data-stat attributes). The
// source nests spanned grouping rows above the real header, so only the
// last row identifies cells.
func lastHeaderColumns(table *goquery.Selection) []string {
	var cols []string
	table.Find("thead tr").Last().Find("th,td").Each(func(_ int, cell *goquery.Selection) {
		cols = append(cols, strings.TrimSpace(cell.AttrOr("data-stat", "")))
	})
	return cols
}

// bodyRows returns the data rows of a stats table, skipping embedded
// repeat-header rows.
func bodyRows(table *goquery.Selection) []*goquery.Selection {
	rows := table.Find("tbody tr")
	if rows.Length() == 0 {
		rows = table.Find("tr")
	}
	var out []*goquery.Selection
	rows.Each(func(_ int, tr *goquery.Selection) {
		if strings.Contains(tr.AttrOr("class", ""), "thead") {
			return
		}
		out = append(out, tr)
	})
	return out
}

// rowValues maps a body row's cells onto the header columns by ordinal
// position. Missing trailing cells map to "".
func rowValues(cols []string, tr *goquery.Selection) map[string]string {
	vals := make(map[string]string, len(cols))
	cells := tr.Find("th,td")
	for i, col := range cols {
		if col == "" || i >= cells.Length() {
			continue
		}
		vals[col] = strings.TrimSpace(cells.Eq(i).Text())
	}
	return vals
}
