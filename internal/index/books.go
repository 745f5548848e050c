package index

import "strings"

// Corpus classifies a verse id by its book abbreviation.
type Corpus string

const (
	CorpusTanakh    Corpus = "tanakh"
	CorpusApostolic Corpus = "apostolic"
	CorpusUnknown   Corpus = ""
)

// Fixed allow-lists of book abbreviations as they appear in verse ids.
// This is a static table, not inferred from the data. MAR is kept
// alongside MRK because both spellings occur across dataset revisions.
var tanakhBooks = map[string]bool{
	"GEN": true, "EXO": true, "LEV": true, "NUM": true, "DEU": true,
	"JOS": true, "JDG": true, "RUT": true,
	"1SA": true, "2SA": true, "1KI": true, "2KI": true,
	"1CH": true, "2CH": true, "EZR": true, "NEH": true, "EST": true,
	"JOB": true, "PSA": true, "PRO": true, "ECC": true, "SNG": true,
	"ISA": true, "JER": true, "LAM": true, "EZK": true, "DAN": true,
	"HOS": true, "JOL": true, "AMO": true, "OBA": true, "JON": true,
	"MIC": true, "NAM": true, "HAB": true, "ZEP": true, "HAG": true,
	"ZEC": true, "MAL": true,
}

var apostolicBooks = map[string]bool{
	"MAT": true, "MRK": true, "MAR": true, "LUK": true, "JHN": true,
	"ACT": true, "ROM": true,
	"1CO": true, "2CO": true, "GAL": true, "EPH": true, "PHP": true,
	"COL": true, "1TH": true, "2TH": true, "1TI": true, "2TI": true,
	"TIT": true, "PHM": true, "HEB": true, "JAS": true,
	"1PE": true, "2PE": true, "1JN": true, "2JN": true, "3JN": true,
	"JUD": true, "REV": true,
}

// CorpusForVerse classifies a verse id such as "EXO.2.1" by its book
// prefix. Unrecognized books yield CorpusUnknown.
func CorpusForVerse(verseID string) Corpus {
	book, _, found := strings.Cut(verseID, ".")
	if !found {
		book = verseID
	}
	switch {
	case tanakhBooks[book]:
		return CorpusTanakh
	case apostolicBooks[book]:
		return CorpusApostolic
	default:
		return CorpusUnknown
	}
}

// BookChapter extracts the "BOOK CHAPTER" prefix used for epoch lookup
// from a verse id ("EXO.2.1" -> "EXO 2"). ok is false when the id has
// no chapter component.
func BookChapter(verseID string) (string, bool) {
	parts := strings.Split(verseID, ".")
	if len(parts) < 2 {
		return "", false
	}
	return parts[0] + " " + parts[1], true
}
