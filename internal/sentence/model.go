// Package sentence stores literary quotations and finds the ones containing a word.
package sentence

// Record is one stored quotation.
type Record struct {
	ID     int64  `db:"id" json:"-" yaml:"-"`
	Text   string `db:"text" json:"text" yaml:"text"`
	Author string `db:"author" json:"author" yaml:"author"`
	Book   string `db:"book" json:"book" yaml:"book"`
}

// AuthorCount is the number of stored quotations attributed to an author.
type AuthorCount struct {
	Author string `db:"author" json:"author"`
	Count  int    `db:"total" json:"count"`
}
