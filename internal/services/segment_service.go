package services

import (
	"math"
	"strings"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
)

type SegmentServiceInterface interface {
	SegmentItinerary(days []request_models.ItineraryDay, destination string) response_models.ItinerarySegments
	ParseDestinations(destination string) []string
}

type SegmentService struct{}

func NewSegmentService() SegmentServiceInterface {
	return &SegmentService{}
}

// travelDayMarker is the hint value upstream generation uses for transit days.
// Such days carry no destination of their own; the arrival is read from the
// title's transition arrow instead.
const travelDayMarker = "travel day"

// Titles mark transit days as "Paris → Rome"; the text after the last arrow
// is the arrival. The ASCII spelling shows up in some model output.
var transitionArrows = []string{"→", "➔", "⇒", "->"}

// ParseDestinations splits the raw comma-separated destination string into the
// ordered candidate list of location names days may be assigned to. Entries
// are trimmed and parenthesized suffixes are dropped ("Japan (Tokyo, Osaka)"
// becomes "Japan"). "Denmark Copenhagen" is collapsed to "Denmark": a known
// formatting quirk of the upstream form, kept as-is for compatibility.
func (s *SegmentService) ParseDestinations(destination string) []string {
	parts := strings.Split(destination, ",")
	candidates := make([]string, 0, len(parts))
	for _, part := range parts {
		cleaned := part
		// The comma split may leave an unclosed "(" behind when the suffix
		// itself contained commas; cutting at the paren handles both forms.
		if idx := strings.Index(cleaned, "("); idx != -1 {
			cleaned = cleaned[:idx]
		}
		cleaned = strings.TrimSpace(cleaned)
		if cleaned == "Denmark Copenhagen" {
			cleaned = "Denmark"
		}
		candidates = append(candidates, cleaned)
	}
	return candidates
}

// SegmentItinerary partitions the itinerary's days into named location
// segments. Days are scanned in order; each one is classified from its
// strongest available signal (explicit hint, travel-day arrow, title and
// activity text, continuation of the previous day, proportional split) and
// appended to the segment for that name. Revisited names accumulate into the
// existing segment, so EndDay is the last day merged in, not necessarily the
// end of a contiguous run. Day numbers are 1-based array positions; the Day
// field on the input is echoed through but never trusted for grouping.
func (s *SegmentService) SegmentItinerary(days []request_models.ItineraryDay, destination string) response_models.ItinerarySegments {
	candidates := s.ParseDestinations(destination)
	acc := newSegmentAccumulator()

	for i, day := range days {
		dayNumber := i + 1
		name, establishes := classifyDay(day, dayNumber, len(days), candidates, acc.current)
		acc.append(name, day, dayNumber, establishes)
	}

	return acc.result()
}

type dayOrigin int

const (
	originUnknown dayOrigin = iota
	originExplicit
	originTransition
)

// decodeOrigin reads the overloaded _destination hint exactly once, so the
// classification below never re-parses the sentinel string.
func decodeOrigin(hint string) dayOrigin {
	trimmed := strings.TrimSpace(hint)
	if trimmed == "" {
		return originUnknown
	}
	if strings.Contains(strings.ToLower(trimmed), travelDayMarker) {
		return originTransition
	}
	return originExplicit
}

// classifyDay resolves one day's location name. The second return reports
// whether the name came from an actual signal and should become the location
// carried into the next day; proportional and first-candidate defaults are
// positional guesses and must not suppress later defaults.
func classifyDay(day request_models.ItineraryDay, dayNumber, totalDays int, candidates []string, current string) (string, bool) {
	switch decodeOrigin(day.Destination) {
	case originExplicit:
		if name, ok := matchCandidate(day.Destination, candidates); ok {
			return name, true
		}
		// The hint names a place outside the candidate list. Trust it: the
		// generator knows where it put the day, the form text may not.
		return strings.TrimSpace(day.Destination), true

	case originTransition:
		if arrival, ok := extractArrival(day.Title); ok {
			// The sentinel itself must never become a segment name, whether
			// it leaked into the candidate list or into a title.
			if name, ok := matchCandidate(arrival, candidates); ok && !strings.EqualFold(name, "Travel Day") {
				return name, true
			}
			if !strings.EqualFold(arrival, "Travel Day") {
				return arrival, true
			}
		}
		if current != "" {
			return current, true
		}
		return candidates[0], false

	default:
		if name, ok := matchHaystack(dayHaystack(day), candidates); ok {
			return name, true
		}
		if current != "" {
			// Multi-day stays often only name the city on arrival day.
			return current, true
		}
		return proportionalCandidate(dayNumber, totalDays, candidates), false
	}
}

// matchCandidate matches text against the candidate list by lowercase
// substring in either direction: "Kyoto, Japan" contains candidate "Japan",
// and a truncated "Japa" is contained by it. First candidate to match wins.
func matchCandidate(text string, candidates []string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return "", false
	}
	for _, candidate := range candidates {
		lc := strings.ToLower(candidate)
		if lc == "" {
			continue
		}
		if strings.Contains(needle, lc) || strings.Contains(lc, needle) {
			return candidate, true
		}
	}
	return "", false
}

// matchHaystack checks the concatenated day text for each candidate's full
// name, or for any of its significant words. Words of three characters or
// fewer are skipped so connectors like "de" or "the" cannot match.
func matchHaystack(haystack string, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		lc := strings.ToLower(candidate)
		if lc == "" {
			continue
		}
		if strings.Contains(haystack, lc) {
			return candidate, true
		}
		for _, word := range strings.Fields(lc) {
			if len(word) > 3 && strings.Contains(haystack, word) {
				return candidate, true
			}
		}
	}
	return "", false
}

func dayHaystack(day request_models.ItineraryDay) string {
	var b strings.Builder
	b.WriteString(day.Title)
	for _, activity := range day.Activities {
		b.WriteString(" ")
		b.WriteString(activity.Description)
		b.WriteString(" ")
		b.WriteString(activity.Address)
	}
	return strings.ToLower(b.String())
}

// extractArrival pulls the destination out of a transit title like
// "Barcelona → Madrid". With multiple arrows the text after the last one is
// the arrival.
func extractArrival(title string) (string, bool) {
	at, width := -1, 0
	for _, arrow := range transitionArrows {
		if idx := strings.LastIndex(title, arrow); idx > at {
			at, width = idx, len(arrow)
		}
	}
	if at == -1 {
		return "", false
	}
	arrival := strings.TrimSpace(title[at+width:])
	return arrival, arrival != ""
}

// proportionalCandidate is the last-resort assignment when a day carries no
// signal at all and no location has been established yet: the trip is split
// into equal consecutive ranges, one per candidate, and the day takes the
// candidate owning its range. Rounding overshoot clamps to the last candidate.
func proportionalCandidate(dayNumber, totalDays int, candidates []string) string {
	perCandidate := int(math.Ceil(float64(totalDays) / float64(len(candidates))))
	if perCandidate < 1 {
		perCandidate = 1
	}
	idx := (dayNumber - 1) / perCandidate
	if idx >= len(candidates) {
		idx = len(candidates) - 1
	}
	return candidates[idx]
}

// segmentAccumulator threads the scan state: the location currently in
// effect, the first-appearance order of names, and the segments keyed by name.
type segmentAccumulator struct {
	current  string
	order    []string
	segments map[string]*response_models.DestinationSegment
}

func newSegmentAccumulator() segmentAccumulator {
	return segmentAccumulator{
		order:    []string{},
		segments: make(map[string]*response_models.DestinationSegment),
	}
}

func (a *segmentAccumulator) append(name string, day request_models.ItineraryDay, dayNumber int, establishes bool) {
	if establishes {
		a.current = name
	}
	seg, ok := a.segments[name]
	if !ok {
		seg = &response_models.DestinationSegment{
			Name:     name,
			StartDay: dayNumber,
			EndDay:   dayNumber,
		}
		a.segments[name] = seg
		a.order = append(a.order, name)
	}
	seg.Days = append(seg.Days, day)
	seg.EndDay = dayNumber
}

func (a *segmentAccumulator) result() response_models.ItinerarySegments {
	out := response_models.ItinerarySegments{
		Order:    a.order,
		Segments: make([]response_models.DestinationSegment, 0, len(a.order)),
	}
	for _, name := range a.order {
		out.Segments = append(out.Segments, *a.segments[name])
	}
	return out
}
