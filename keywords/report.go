package keywords

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes the ranked report with a header row. Columns are
// phrase, paper_count, word_count; all phrase text is ASCII after
// normalization.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"phrase", "paper_count", "word_count"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{r.Phrase, strconv.Itoa(r.PaperCount), strconv.Itoa(r.WordCount)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
