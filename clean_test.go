package tweetprep

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func primaryRows() []RawRecord {
	rows := []RawRecord{
		{Text: "I love my ipad so much", Product: "iPad", Emotion: "Positive emotion"},
		{Text: "I can't tell", Product: "iPad", Emotion: "I can't tell"},
		{Text: "RT @someuser check out this Android app!!", Product: "Android App", Emotion: "Positive emotion"},
		{Text: "", Product: "Google", Emotion: "Negative emotion"},
		{Text: "Google maps is great", Product: "Google", Emotion: "Mildly amused"},
		{Text: "Google maps is down again", Product: "Google", Emotion: "Negative emotion"},
		{Text: "Waiting in line", Product: "", Emotion: "No emotion toward brand or product"},
		{Text: "Waiting in line", Product: "No target", Emotion: "No emotion toward brand or product"},
	}
	for i := range rows {
		rows[i].Index = i
	}
	return rows
}

func TestCleanPrimary(t *testing.T) {
	records, diagnostics, err := CleanPrimary(primaryRows(),
		UsingNormalizer(testNormalizer()),
		WithLemmatization(false))
	if err != nil {
		t.Fatalf("CleanPrimary returned error: %v", err)
	}

	want := []Record{
		{Index: 0, Emotion: Positive, Text: "love product_target much"},
		{Index: 2, Emotion: Positive, Text: "check product_target"},
		{Index: 5, Emotion: Negative, Text: "product_target maps"},
		{Index: 7, Emotion: Neutral, Text: "waiting line"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	wantDiagnostics := []Diagnostic{{Source: PrimarySource, Index: 4, Label: "Mildly amused"}}
	if diff := cmp.Diff(wantDiagnostics, diagnostics, cmpopts.IgnoreFields(Diagnostic{}, "Err")); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(diagnostics[0].Err, ErrUnrecognizedLabel) {
		t.Errorf("diagnostic error %v does not wrap ErrUnrecognizedLabel", diagnostics[0].Err)
	}
}

func TestCleanPrimaryExcludesAmbiguousRows(t *testing.T) {
	rows := []RawRecord{
		{Index: 0, Text: "I can't tell", Product: "iPad", Emotion: "I can't tell"},
		{Index: 1, Text: "Best ipad ever", Product: "iPad", Emotion: "I can't tell"},
	}

	records, diagnostics, err := CleanPrimary(rows, UsingNormalizer(testNormalizer()), WithLemmatization(false))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("ambiguous rows should be excluded, got %v", records)
	}
	if len(diagnostics) != 0 {
		t.Errorf("ambiguous rows are not diagnostics, got %v", diagnostics)
	}
}

func TestCleanPrimaryRecordsAreClean(t *testing.T) {
	records, _, err := CleanPrimary(primaryRows(), UsingNormalizer(testNormalizer()), WithLemmatization(false))
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range records {
		if !r.Emotion.Valid() {
			t.Errorf("record %d has invalid emotion %v", r.Index, r.Emotion)
		}
		for _, tok := range strings.Split(r.Text, " ") {
			if tok == "" || tok == "rt" || tok == "app" || strings.ContainsAny(tok, "@!") {
				t.Errorf("record %d has token %q in %q", r.Index, tok, r.Text)
			}
		}
	}
}

func TestCleanPrimaryLemmatizes(t *testing.T) {
	n := NewNormalizer(
		UsingTagger(fixedTagger("VBG")),
		UsingLemmatizer(NewLemmatizerWithDictionary(mapDictionary{"wait": true})),
	)
	rows := []RawRecord{{Index: 3, Text: "Waiting in line", Product: "No target", Emotion: "Negative emotion"}}

	records, _, err := CleanPrimary(rows, UsingNormalizer(n))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Text != "wait line" {
		t.Errorf("CleanPrimary = %v, want lemmatized text %q", records, "wait line")
	}
}

func TestCleanPrimaryReportsProgress(t *testing.T) {
	var reports []float64
	_, _, err := CleanPrimary(primaryRows(),
		UsingNormalizer(testNormalizer()),
		WithLemmatization(false),
		WithProgressCallback(func(p float64) { reports = append(reports, p) }))
	if err != nil {
		t.Fatal(err)
	}

	if len(reports) == 0 {
		t.Fatal("no progress reported")
	}
	if reports[0] != 0 || reports[len(reports)-1] != 1 {
		t.Errorf("progress should run from 0 to 1, got %v", reports)
	}
}
