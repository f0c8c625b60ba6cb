package tweetprep

import "testing"

func TestLemmatize(t *testing.T) {
	dict := mapDictionary{
		"cat": true, "box": true, "glass": true, "walk": true, "stop": true,
		"run": true, "shoe": true, "woman": true, "leaf": true, "try": true,
		"love": true, "fast": true,
	}
	lemmatizer := NewLemmatizerWithDictionary(dict)

	tests := []struct {
		word     string
		pos      POS
		expected string
	}{
		{"cats", Noun, "cat"},
		{"boxes", Noun, "box"},
		{"glasses", Noun, "glass"},
		{"women", Noun, "woman"},
		{"leaves", Noun, "leaf"},
		{"children", Noun, "child"},
		{"walked", Verb, "walk"},
		{"stopped", Verb, "stop"},
		{"running", Verb, "run"},
		{"tries", Verb, "try"},
		{"loving", Verb, "love"},
		{"ran", Verb, "run"},
		{"was", Verb, "be"},
		{"happier", Adjective, "happy"},
		{"faster", Adverb, "fast"},
		{"cat", Noun, "cat"},
		{"xyzzy", Noun, "xyzzy"},
		{"walked", Noun, "walked"},
		{"", Noun, ""},
	}

	for _, tt := range tests {
		t.Run(tt.word+"/"+string(tt.pos), func(t *testing.T) {
			if got := lemmatizer.Lemmatize(tt.word, tt.pos); got != tt.expected {
				t.Errorf("Lemmatize(%q, %q) = %q, want %q", tt.word, tt.pos, got, tt.expected)
			}
		})
	}
}

func TestLemmatizeAppliesRulesRepeatedly(t *testing.T) {
	// "pass" only reaches "pa" on the second step.
	lemmatizer := NewLemmatizerWithDictionary(mapDictionary{"pa": true})
	if got := lemmatizer.Lemmatize("pas", Noun); got != "pa" {
		t.Errorf("Lemmatize(%q) = %q, want %q", "pas", got, "pa")
	}
	if got := lemmatizer.Lemmatize("pass", Noun); got != "pa" {
		t.Errorf("Lemmatize(%q) = %q, want %q", "pass", got, "pa")
	}
}

func TestUndouble(t *testing.T) {
	tests := []struct {
		word     string
		expected []string
	}{
		{"stopped", []string{"stop"}},
		{"running", []string{"run"}},
		{"calling", nil},
		{"passed", nil},
		{"buzzed", nil},
		{"walked", nil},
		{"red", nil},
	}

	for _, tt := range tests {
		got := undouble(tt.word)
		if len(got) != len(tt.expected) || (len(got) == 1 && got[0] != tt.expected[0]) {
			t.Errorf("undouble(%q) = %v, want %v", tt.word, got, tt.expected)
		}
	}
}

func TestWordNetLemmatizer(t *testing.T) {
	lemmatizer, err := NewWordNetLemmatizer()
	if err != nil {
		t.Fatalf("NewWordNetLemmatizer: %v", err)
	}

	tests := []struct {
		word string
		pos  POS
		want string
	}{
		{"cats", Noun, "cat"},
		{"children", Noun, "child"},
		{"was", Verb, "be"},
		{"better", Adjective, "good"},
	}
	for _, tt := range tests {
		if got := lemmatizer.Lemmatize(tt.word, tt.pos); got != tt.want {
			t.Errorf("Lemmatize(%q, %q) = %q, want %q", tt.word, tt.pos, got, tt.want)
		}
	}
}
