package statsd

import (
	"strconv"
	"strings"
)

// Wire type codes of the statsd protocol.
const (
	typeCounter   = "c"
	typeGauge     = "g"
	typeTimer     = "ms"
	typeHistogram = "h"
)

// formatLine assembles one statsd line:
//
//	[<prefix>.]<name>:<value>|<type>[|@<rate>][|#<tag1>,<tag2>,...]
//
// The rate segment is only emitted for rates other than 1.0. There is no
// trailing newline; each line is one datagram.
func formatLine(prefix, name, value, typeCode string, rate float64, tagSuffix string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(name)
	sb.WriteByte(':')
	sb.WriteString(value)
	sb.WriteByte('|')
	sb.WriteString(typeCode)
	if rate != 1.0 {
		sb.WriteString("|@")
		sb.WriteString(formatFloat(rate))
	}
	sb.WriteString(tagSuffix)
	return sb.String()
}

func formatInt(value int64) string {
	return strconv.FormatInt(value, 10)
}

// formatFloat renders float values and sample rates with fixed 6-decimal
// precision, rounded half-even.
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', 6, 64)
}

// tagSuffix merges the client's constant tags with call-site tags into the
// wire suffix. Both lists empty yields the empty string; otherwise the suffix
// is "|#" followed by constant tags then call tags, comma separated. Tag
// content is not escaped: a tag containing ',' or '|' will corrupt the line.
func tagSuffix(constantTags, tags []string) string {
	if len(constantTags) == 0 && len(tags) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("|#")
	for i, tag := range constantTags {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(tag)
	}
	if len(constantTags) > 0 && len(tags) > 0 {
		sb.WriteByte(',')
	}
	for i, tag := range tags {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(tag)
	}
	return sb.String()
}

// sample decides whether a call at the given rate is emitted. A rate of
// exactly 1.0 always emits and draws no randomness. Rates outside (0,1] are
// not validated.
func sample(rate float64, random func() float64) bool {
	return rate == 1.0 || random() <= rate
}
