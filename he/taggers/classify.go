package taggers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// ClassifyRule is the name of the classifier within a grammar cache.
const ClassifyRule = "tokenize_and_classify"

// ClassifyFst is the sentence level classifier. It splits a sentence at
// white space into tokens, each of which is tagged by the cheapest category
// grammar:
//
//    tokens { cardinal { integer: "23" } } tokens { word { name: "ילדים" } }
//
// Punctuation may be attached to either side of a token and becomes a token
// of its own.
type ClassifyFst struct {
	he.GraphFst
}

// NewClassifyFst creates the classifier. If cache is not nil and holds a
// compiled classifier, the grammars are not rebuilt; otherwise the newly
// built classifier is stored into cache.
func NewClassifyFst(lex *he.Lexicons, cache he.Cache) (*ClassifyFst, error) {
	c := &ClassifyFst{GraphFst: he.NewGraphFst(ClassifyRule, he.Classify, true)}
	if c.Restore(cache, ClassifyRule) {
		return c, nil
	}
	tracer().Infof("creating classify grammars")
	graph, err := classifyGraph(lex)
	if err != nil {
		return nil, err
	}
	if err = c.SetFst(graph); err != nil {
		return nil, err
	}
	if cache != nil {
		if err = cache.Store(ClassifyRule, c.Fst()); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func classifyGraph(lex *he.Lexicons) (*itn.Fst, error) {
	cardinal, err := NewCardinalFst(lex)
	if err != nil {
		return nil, err
	}
	ordinal, err := NewOrdinalFst(lex)
	if err != nil {
		return nil, err
	}
	decimal, err := NewDecimalFst(cardinal, lex)
	if err != nil {
		return nil, err
	}
	measure, err := NewMeasureFst(cardinal, decimal, lex)
	if err != nil {
		return nil, err
	}
	date, err := NewDateFst(cardinal, ordinal, lex)
	if err != nil {
		return nil, err
	}
	time, err := NewTimeFst(cardinal, lex)
	if err != nil {
		return nil, err
	}
	whitelist, err := NewWhiteListFst(lex)
	if err != nil {
		return nil, err
	}
	word, err := NewWordFst()
	if err != nil {
		return nil, err
	}
	punct, err := NewPunctuationFst()
	if err != nil {
		return nil, err
	}
	// the order of alternatives breaks ties between equal weights
	classify := alt(
		itn.AddWeight(whitelist.Fst(), WeightWhitelist),
		itn.AddWeight(time.Fst(), WeightTime),
		itn.AddWeight(date.Fst(), WeightDate),
		itn.AddWeight(decimal.Fst(), WeightDecimal),
		itn.AddWeight(measure.Fst(), WeightMeasure),
		itn.AddWeight(cardinal.Fst(), WeightCardinal),
		itn.AddWeight(word.Fst(), WeightWord),
	)
	punctToken := cat(ins("tokens { "), itn.AddWeight(punct.Fst(), WeightPunct), ins(" }"))
	token := cat(ins("tokens { "), classify, ins(" }"))
	tokenPlusPunct := cat(
		itn.Star(cat(punctToken, ins(" "))),
		token,
		itn.Star(cat(ins(" "), punctToken)),
	)
	graph := cat(
		he.DeleteSpace,
		tokenPlusPunct,
		itn.Star(cat(he.DeleteExtraSpace, tokenPlusPunct)),
		he.DeleteSpace,
	)
	return graph, nil
}

// Classify tags a sentence.
func (c *ClassifyFst) Classify(sentence string) (string, error) {
	return c.Apply(sentence)
}
