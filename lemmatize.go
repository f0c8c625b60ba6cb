package tweetprep

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// A Lemmatizer reduces a word to its dictionary form for a part of speech.
type Lemmatizer interface {
	Lemmatize(word string, pos POS) string
}

// A LemmaDictionary answers whether a word is a known base form.
type LemmaDictionary interface {
	InDict(word string) bool
	Lemma(word string) string
}

type substitution struct {
	suffix  string
	replace string
}

// Detachment rules applied by WordNet's morphy, per part of speech.
var morphyRules = map[POS][]substitution{
	Noun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""}, {"ed", "e"},
		{"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
	Adverb: {},
}

// wordNetLemmatizer implements morphy: exception lists first, then suffix
// rules until a candidate is found in the dictionary.
type wordNetLemmatizer struct {
	dict       LemmaDictionary
	exceptions map[POS]map[string]string
}

var (
	defaultDictOnce sync.Once
	defaultDict     LemmaDictionary
	defaultDictErr  error
)

// NewWordNetLemmatizer returns a Lemmatizer backed by golem's English
// dictionary. The dictionary is loaded once per process.
func NewWordNetLemmatizer() (Lemmatizer, error) {
	defaultDictOnce.Do(func() {
		lemmatizer, err := golem.New(en.New())
		if err != nil {
			defaultDictErr = fmt.Errorf("load lemma dictionary: %w", err)
			return
		}
		defaultDict = lemmatizer
	})
	if defaultDictErr != nil {
		return nil, defaultDictErr
	}
	return NewLemmatizerWithDictionary(defaultDict), nil
}

// NewLemmatizerWithDictionary returns a morphy Lemmatizer over dict.
func NewLemmatizerWithDictionary(dict LemmaDictionary) Lemmatizer {
	return &wordNetLemmatizer{dict: dict, exceptions: morphyExceptions}
}

// Lemmatize returns the shortest valid base form of word, or word itself when
// no candidate is in the dictionary.
func (l *wordNetLemmatizer) Lemmatize(word string, pos POS) string {
	if word == "" {
		return word
	}
	if lemma, ok := l.exceptions[pos][word]; ok {
		return lemma
	}

	rules := morphyRules[pos]
	forms := applyRules([]string{word}, rules)
	if pos == Verb {
		forms = append(forms, undouble(word)...)
	}
	if found := l.filter(append([]string{word}, forms...)); len(found) > 0 {
		return shortest(found)
	}
	for len(forms) > 0 {
		forms = applyRules(forms, rules)
		if found := l.filter(forms); len(found) > 0 {
			return shortest(found)
		}
	}
	return word
}

// filter keeps the forms that are base forms in the dictionary, dropping
// duplicates.
func (l *wordNetLemmatizer) filter(forms []string) []string {
	var found []string
	seen := make(map[string]bool, len(forms))
	for _, f := range forms {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		if l.dict.InDict(f) && l.dict.Lemma(f) == f {
			found = append(found, f)
		}
	}
	return found
}

func applyRules(forms []string, rules []substitution) []string {
	var out []string
	for _, form := range forms {
		for _, r := range rules {
			if strings.HasSuffix(form, r.suffix) {
				out = append(out, form[:len(form)-len(r.suffix)]+r.replace)
			}
		}
	}
	return out
}

// undouble covers the doubled-consonant past and progressive forms
// (stopped, running) that WordNet lists as verb exceptions. Stems ending in
// a naturally doubled letter (call, pass, buzz, stuff) are left alone.
func undouble(word string) []string {
	for _, suffix := range []string{"ing", "ed"} {
		stem, ok := strings.CutSuffix(word, suffix)
		n := len(stem)
		if !ok || n < 3 || stem[n-1] != stem[n-2] {
			continue
		}
		if strings.ContainsRune("aeiouylsfz", rune(stem[n-1])) {
			continue
		}
		return []string{stem[:n-1]}
	}
	return nil
}

func shortest(forms []string) string {
	best := forms[0]
	for _, f := range forms[1:] {
		if len(f) < len(best) {
			best = f
		}
	}
	return best
}

// morphyExceptions holds the common irregular forms from WordNet's
// exception lists.
var morphyExceptions = map[POS]map[string]string{
	Noun: {
		"children": "child", "feet": "foot", "teeth": "tooth", "mice": "mouse",
		"geese": "goose", "oxen": "ox", "lice": "louse", "criteria": "criterion",
		"phenomena": "phenomenon", "analyses": "analysis", "crises": "crisis",
		"theses": "thesis", "indices": "index", "matrices": "matrix",
	},
	Verb: {
		"was": "be", "were": "be", "been": "be", "is": "be", "am": "be", "are": "be",
		"had": "have", "has": "have", "did": "do", "does": "do", "done": "do",
		"went": "go", "gone": "go", "ran": "run", "made": "make", "said": "say",
		"got": "get", "gotten": "get", "took": "take", "taken": "take",
		"came": "come", "saw": "see", "seen": "see", "knew": "know", "known": "know",
		"gave": "give", "given": "give", "found": "find", "thought": "think",
		"told": "tell", "became": "become", "left": "leave", "felt": "feel",
		"brought": "bring", "began": "begin", "begun": "begin", "kept": "keep",
		"held": "hold", "wrote": "write", "written": "write", "stood": "stand",
		"heard": "hear", "meant": "mean", "met": "meet", "paid": "pay", "sat": "sit",
		"spoke": "speak", "spoken": "speak", "led": "lead", "grew": "grow",
		"grown": "grow", "lost": "lose", "fell": "fall", "fallen": "fall",
		"sent": "send", "built": "build", "understood": "understand",
		"spent": "spend", "won": "win", "bought": "buy", "caught": "catch",
		"taught": "teach", "sold": "sell", "fought": "fight", "chose": "choose",
		"chosen": "choose", "drove": "drive", "driven": "drive", "ate": "eat",
		"eaten": "eat", "broke": "break", "broken": "break", "wore": "wear",
		"worn": "wear", "shot": "shoot", "threw": "throw", "thrown": "throw",
		"flew": "fly", "flown": "fly", "forgot": "forget", "forgotten": "forget",
		"slept": "sleep", "woke": "wake", "hid": "hide", "lent": "lend",
		"rode": "ride", "sang": "sing", "sung": "sing", "swam": "swim",
		"tore": "tear", "stole": "steal", "drew": "draw", "drawn": "draw",
		"drank": "drink", "hung": "hang", "dug": "dig", "fed": "feed",
		"fled": "flee", "struck": "strike", "shook": "shake", "shaken": "shake",
		"sank": "sink", "rang": "ring", "rung": "ring", "stuck": "stick",
		"swore": "swear", "spun": "spin", "bit": "bite", "bitten": "bite",
		"blew": "blow", "blown": "blow", "froze": "freeze", "frozen": "freeze",
		"rose": "rise", "risen": "rise", "shone": "shine", "slid": "slide",
		"dying": "die", "lying": "lie", "tying": "tie", "laid": "lay",
	},
	Adjective: {
		"better": "good", "best": "good", "worse": "bad", "worst": "bad",
		"happier": "happy", "happiest": "happy", "bigger": "big", "biggest": "big",
		"hotter": "hot", "hottest": "hot", "easier": "easy", "easiest": "easy",
		"earlier": "early", "earliest": "early", "funnier": "funny",
		"funniest": "funny", "prettier": "pretty", "prettiest": "pretty",
		"busier": "busy", "busiest": "busy", "farther": "far", "farthest": "far",
		"elder": "old", "eldest": "old",
	},
	Adverb: {
		"better": "well", "best": "well", "farther": "far", "farthest": "far",
		"further": "far", "furthest": "far", "harder": "hard", "hardest": "hard",
		"faster": "fast", "fastest": "fast", "sooner": "soon", "soonest": "soon",
	},
}
