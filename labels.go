package tweetprep

import "strings"

// UnknownTarget is returned by MapTarget for a category it does not know.
const UnknownTarget = "Unknown target"

// AmbiguousEmotion is the primary dataset's label for tweets the annotators
// could not classify.
const AmbiguousEmotion = "I can't tell"

var emotionLabels = map[string]Emotion{
	"Positive emotion":                   Positive,
	"No emotion toward brand or product": Neutral,
	"Negative emotion":                   Negative,
}

// Keys are lowercase; an empty keyword means the category names no single
// product.
var targetKeywords = map[string]string{
	"no target":                       "",
	"ipad":                            "ipad",
	"apple":                           "apple",
	"ipad or iphone app":              "app",
	"iphone":                          "iphone",
	"other apple product or service":  "",
	"google":                          "google",
	"other google product or service": "",
	"android":                         "android",
	"android app":                     "android",
}

// appCategories are the categories whose target is itself an app.
var appCategories = map[string]bool{
	"android app":        true,
	"ipad or iphone app": true,
}

// MapEmotion maps a primary-dataset emotion label to its canonical class.
// Matching is exact. Any other label yields a *LabelError.
func MapEmotion(label string) (Emotion, error) {
	if e, ok := emotionLabels[label]; ok {
		return e, nil
	}
	return 0, &LabelError{Label: label, Kind: "emotion"}
}

// MapTarget maps a product category to the keyword whose occurrences are
// masked in the tweet text. Matching ignores case.
func MapTarget(category string) string {
	if kw, ok := targetKeywords[strings.ToLower(category)]; ok {
		return kw
	}
	return UnknownTarget
}

// IsKnownTarget reports whether MapTarget recognizes category.
func IsKnownTarget(category string) bool {
	_, ok := targetKeywords[strings.ToLower(category)]
	return ok
}

// IsAmbiguousEmotion reports whether label is the "I can't tell" label.
func IsAmbiguousEmotion(label string) bool {
	return label == AmbiguousEmotion
}

func isAppCategory(category string) bool {
	return appCategories[strings.ToLower(category)]
}
