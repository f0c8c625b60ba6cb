package tweetprep

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceNamed(t *testing.T, name string) ExternalSource {
	t.Helper()
	for _, src := range ExternalSources() {
		if src.Name == name {
			return src
		}
	}
	t.Fatalf("no external source named %q", name)
	return ExternalSource{}
}

func TestExternalSourcesOrder(t *testing.T) {
	var names []string
	for _, src := range ExternalSources() {
		names = append(names, src.Name)
	}
	assert.Equal(t, []string{"apple", "deflategate", "coachella"}, names)
}

func TestExternalSourceMapLabel(t *testing.T) {
	tests := []struct {
		source   string
		label    string
		expected Emotion
	}{
		{"apple", "5", Positive},
		{"apple", "3", Neutral},
		{"apple", "1", Negative},
		{"deflategate", "positive", Positive},
		{"deflategate", "slightly positive", Positive},
		{"deflategate", "neutral", Neutral},
		{"deflategate", "negative", Negative},
		{"deflategate", "slightly negative", Negative},
		{"coachella", "positive", Positive},
		{"coachella", "neutral", Neutral},
		{"coachella", "negative", Negative},
	}

	for _, tt := range tests {
		t.Run(tt.source+"/"+tt.label, func(t *testing.T) {
			got, err := sourceNamed(t, tt.source).MapLabel(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEveryExternalSourceMapsNeutral(t *testing.T) {
	for _, src := range ExternalSources() {
		neutral := "neutral"
		if src.Name == "apple" {
			neutral = "3"
		}
		got, err := src.MapLabel(neutral)
		if err != nil || got != Neutral {
			t.Errorf("%s: %q should map to %v, got %v (%v)", src.Name, neutral, Neutral, got, err)
		}
	}
}

func TestExternalSourceMapLabelUnrecognized(t *testing.T) {
	_, err := sourceNamed(t, "apple").MapLabel("not_relevant")
	assert.True(t, errors.Is(err, ErrUnrecognizedLabel))

	var labelErr *LabelError
	require.True(t, errors.As(err, &labelErr))
	assert.Equal(t, "apple", labelErr.Kind)
}

func TestCleanExternal(t *testing.T) {
	table := &Table{
		Header: []string{"_unit_id", "deflate_sentiment", "text"},
		Rows: [][]string{
			{"1", "neutral", "Tom Brady footballs deflated"},
			{"2", "slightly negative", "Cheaters!!"},
			{"3", "bogus", "whatever happens"},
			{"4", "positive", ""},
			{"5", "positive", "@NFL 12 psi"},
		},
	}

	records, diagnostics, err := CleanExternal(sourceNamed(t, "deflategate"), table,
		UsingNormalizer(testNormalizer()), WithLemmatization(false))
	require.NoError(t, err)

	want := []Record{
		{Index: 0, Emotion: Neutral, Text: "tom brady footballs deflated"},
		{Index: 1, Emotion: Negative, Text: "cheaters"},
		{Index: 4, Emotion: Positive, Text: "psi"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	wantDiagnostics := []Diagnostic{{Source: "deflategate", Index: 2, Label: "bogus"}}
	if diff := cmp.Diff(wantDiagnostics, diagnostics, cmpopts.IgnoreFields(Diagnostic{}, "Err")); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestCleanExternalExcludesLabels(t *testing.T) {
	table := &Table{
		Header: []string{"coachella_sentiment", "text"},
		Rows: [][]string{
			{"cant tell", "lineup announced"},
			{"positive", "lineup announced"},
		},
	}

	records, diagnostics, err := CleanExternal(sourceNamed(t, "coachella"), table,
		UsingNormalizer(testNormalizer()), WithLemmatization(false))
	require.NoError(t, err)
	assert.Empty(t, diagnostics)
	assert.Equal(t, []Record{{Index: 1, Emotion: Positive, Text: "lineup announced"}}, records)
}

func TestCleanExternalMissingColumn(t *testing.T) {
	table := &Table{Header: []string{"text"}, Rows: [][]string{{"hello"}}}

	_, _, err := CleanExternal(sourceNamed(t, "apple"), table, UsingNormalizer(testNormalizer()))
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestLoadExternalDatasets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Apple-Twitter-Sentiment-DFE.csv",
		"_unit_id,sentiment,date,text\n1,5,x,Love the new phone\n2,not_relevant,x,stock price\n")
	writeFile(t, dir, "Deflategate-DFE.csv",
		"deflate_sentiment,text\nslightly positive,brady is innocent\n")
	writeFile(t, dir, "Coachella-2015-2-DFE.csv",
		"coachella_sentiment,coachella_yn,text\ncant tell,yes,what\nnegative,yes,tickets sold out\n")

	records, diagnostics, err := LoadExternalDatasets(dir,
		UsingNormalizer(testNormalizer()), WithLemmatization(false))
	require.NoError(t, err)

	assert.Equal(t, []Record{
		{Index: 0, Emotion: Positive, Text: "love new phone"},
		{Index: 0, Emotion: Positive, Text: "brady innocent"},
		{Index: 1, Emotion: Negative, Text: "tickets sold"},
	}, records)

	require.Len(t, diagnostics, 1)
	assert.Equal(t, "apple", diagnostics[0].Source)
	assert.Equal(t, "not_relevant", diagnostics[0].Label)
}

func TestLoadExternalDatasetsProgress(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Apple-Twitter-Sentiment-DFE.csv", "sentiment,text\n5,great phone\n1,bad phone\n")
	writeFile(t, dir, "Deflategate-DFE.csv", "deflate_sentiment,text\nneutral,footballs\n")
	writeFile(t, dir, "Coachella-2015-2-DFE.csv", "coachella_sentiment,text\npositive,lineup\nnegative,rain\n")

	var reports []float64
	_, _, err := LoadExternalDatasets(dir,
		UsingNormalizer(testNormalizer()),
		WithLemmatization(false),
		WithProgressCallback(func(p float64) { reports = append(reports, p) }))
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0, 1.0 / 6, 1.0 / 3, 1.0 / 3, 2.0 / 3, 2.0 / 3, 5.0 / 6, 1}, reports, 1e-9)
	for i := 1; i < len(reports); i++ {
		assert.GreaterOrEqual(t, reports[i], reports[i-1], "progress went backwards at report %d", i)
	}
}

func TestLoadExternalDatasetsMissingFile(t *testing.T) {
	_, _, err := LoadExternalDatasets(t.TempDir(), UsingNormalizer(testNormalizer()))
	assert.Error(t, err)
}
