package sheets

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var nextWeekPattern = regexp.MustCompile(`NEXT\s+(\d+)\s+WEEK`)

// FilterWeekTitles keeps only sheet titles that look like week sheets and
// orders them for navigation: any title containing "THIS WEEK" first, then
// ascending by the numeral in "NEXT N WEEK(S)". A bare "NEXT WEEK" counts
// as 1; titles matching neither pattern sort last.
func FilterWeekTitles(titles []string) []string {
	var weeks []string
	for _, title := range titles {
		upper := strings.ToUpper(title)
		if strings.Contains(upper, "THIS WEEK") ||
			strings.Contains(upper, "NEXT") ||
			strings.Contains(upper, "WEEK") {
			weeks = append(weeks, title)
		}
	}

	sort.SliceStable(weeks, func(i, j int) bool {
		return weekRank(weeks[i]) < weekRank(weeks[j])
	})
	return weeks
}

func weekRank(title string) int {
	upper := strings.ToUpper(title)
	if strings.Contains(upper, "THIS WEEK") {
		return 0
	}
	if m := nextWeekPattern.FindStringSubmatch(upper); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	if strings.Contains(upper, "NEXT WEEK") {
		return 1
	}
	return 999
}
