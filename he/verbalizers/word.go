package verbalizers

import (
	"github.com/npillmayer/itn/he"
)

// NameFst verbalizes tokens consisting of a single name field, which is
// written as is. Categories word, whitelist and punct are of this kind:
//
//    whitelist { name: "עו״ד" }  ⇒  עו״ד
type NameFst struct {
	he.GraphFst
}

// NewNameFst creates a verbalizer for name-field tokens of a category.
func NewNameFst(category string) (*NameFst, error) {
	n := &NameFst{GraphFst: he.NewGraphFst(category, he.Verbalize, true)}
	if err := n.SetFst(n.DeleteTokens(he.DeleteField("name", he.FieldValue))); err != nil {
		return nil, err
	}
	return n, nil
}
