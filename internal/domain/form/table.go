package form

import (
	"strconv"
	"strings"
)

// ExportHeader is the column contract consumed by the export side:
// a row counter, respondent identity, then one column per field in display
// order.
func ExportHeader(fields []Field) []string {
	header := []string{"#", "Name", "Email"}
	for _, f := range fields {
		header = append(header, f.Label)
	}
	return header
}

// TableRows renders submissions against the current field list. Each row is
// [index, name, email, answers in field order]. A submission missing an
// answer for a field contributes an empty cell; answer keys that no longer
// match any field label are ignored. Row order follows the submission slice,
// which the repository returns in creation order.
func TableRows(submissions []Submission, fields []Field) [][]string {
	rows := make([][]string, 0, len(submissions))
	for i, sub := range submissions {
		row := make([]string, 0, len(fields)+3)
		row = append(row, strconv.Itoa(i+1), sub.Name, sub.Email)
		for _, f := range fields {
			row = append(row, AnswerCell(sub.Answers[f.Label]))
		}
		rows = append(rows, row)
	}
	return rows
}

// FilterSubmissions keeps submissions whose name or email contains the query
// as a case-insensitive substring. An empty query keeps everything.
func FilterSubmissions(submissions []Submission, query string) []Submission {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return submissions
	}
	out := []Submission{}
	for _, s := range submissions {
		if strings.Contains(strings.ToLower(s.Name), query) ||
			strings.Contains(strings.ToLower(s.Email), query) {
			out = append(out, s)
		}
	}
	return out
}
