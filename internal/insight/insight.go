// Package insight turns the mood list into aggregate stats and short
// templated observations. Everything here is pure and safe to call on every
// render.
package insight

import (
	"fmt"
	"time"

	"github.com/mindease/mindease/internal"
)

// Bucket classifies an entry's hour of day.
type Bucket string

const (
	Morning   Bucket = "Morning"   // [5,12)
	Afternoon Bucket = "Afternoon" // [12,17)
	Evening   Bucket = "Evening"   // [17,21)
	Night     Bucket = "Night"     // otherwise
	Unknown   Bucket = "Unknown"   // unparseable timestamp
)

// bucketOrder fixes iteration order so derived sentences are deterministic.
var bucketOrder = []Bucket{Morning, Afternoon, Evening, Night}

// Heuristic knobs. These are configuration constants, not sacred values.
const (
	// MinEntries is the smallest journal that yields real insights.
	MinEntries = 3
	// BucketThreshold: a negative mood must dominate a time bucket more than
	// this many times before it is called out.
	BucketThreshold = 2
	// TagThreshold: a tag/mood pairing must occur more than this many times.
	TagThreshold = 1
	// MaxSentences caps the emitted observations.
	MaxSentences = 3
)

const (
	placeholderSentence = "Log a few more moments to unlock your patterns."
	balancedSentence    = "Your moods look balanced across the day. Keep checking in."
)

// Stats are the aggregate numbers for the history screen. Averages only
// count entries that carry lifestyle data.
type Stats struct {
	AvgSleepHours  float64
	AvgWaterOunces float64
	TotalEntries   int
}

// Averages computes mean sleep and hydration over entries with lifestyle
// data; entries without it stay out of the denominator.
func Averages(moods []internal.MoodEntry) Stats {
	stats := Stats{TotalEntries: len(moods)}
	var sleep, water float64
	n := 0
	for _, m := range moods {
		if m.Lifestyle == nil {
			continue
		}
		sleep += m.Lifestyle.SleepHours
		water += m.Lifestyle.WaterOunces
		n++
	}
	if n > 0 {
		stats.AvgSleepHours = sleep / float64(n)
		stats.AvgWaterOunces = water / float64(n)
	}
	return stats
}

// BucketOf classifies an ISO-8601 timestamp. Anything unparseable lands in
// Unknown rather than failing.
func BucketOf(date string) Bucket {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return Unknown
	}
	hour := t.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}

// Sentences derives at most MaxSentences observations. Fewer than MinEntries
// entries yields exactly the placeholder; no qualifying pattern yields
// exactly the balanced default.
func Sentences(moods []internal.MoodEntry) []string {
	if len(moods) < MinEntries {
		return []string{placeholderSentence}
	}

	var out []string

	// Dominant negative mood per time bucket.
	byBucket := map[Bucket]map[string]int{}
	for _, m := range moods {
		b := BucketOf(m.Date)
		if b == Unknown {
			continue
		}
		if byBucket[b] == nil {
			byBucket[b] = map[string]int{}
		}
		byBucket[b][m.Mood]++
	}
	for _, b := range bucketOrder {
		mood, count := dominant(byBucket[b])
		if internal.NegativeMoods[mood] && count > BucketThreshold {
			out = append(out, fmt.Sprintf("You often log %s in the %s. A small %s ritual might help.",
				mood, b, b))
		}
		if len(out) >= MaxSentences {
			return out
		}
	}

	// Tag and mood co-occurrence, tags in first-seen order.
	var tagOrder []string
	byTag := map[string]map[string]int{}
	for _, m := range moods {
		for _, tag := range m.Tags {
			if byTag[tag] == nil {
				byTag[tag] = map[string]int{}
				tagOrder = append(tagOrder, tag)
			}
			byTag[tag][m.Mood]++
		}
	}
	for _, tag := range tagOrder {
		mood, count := dominant(byTag[tag])
		if count > TagThreshold {
			out = append(out, fmt.Sprintf("Moments tagged %s tend to come with %s moods.", tag, mood))
		}
		if len(out) >= MaxSentences {
			return out
		}
	}

	if len(out) == 0 {
		return []string{balancedSentence}
	}
	return out
}

// dominant picks the most frequent label, breaking ties by label so output
// stays stable.
func dominant(counts map[string]int) (string, int) {
	best, bestCount := "", 0
	for mood, count := range counts {
		if count > bestCount || (count == bestCount && mood < best) {
			best, bestCount = mood, count
		}
	}
	return best, bestCount
}
