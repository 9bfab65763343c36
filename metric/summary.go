// Package metric summarises a generated host list per latency class.
package metric

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/latency-testnet/hosts"
	"github.com/samber/lo"
)

// ClassStat counts the nodes of one latency class and names the first and
// last of them.
type ClassStat struct {
	Latency string
	Count   int
	First   string
	Last    string
}

// Summarize groups nodes by latency, in order of first appearance.
func Summarize(nodes []hosts.Node) []ClassStat {
	latencies := lo.Uniq(lo.Map(nodes, func(n hosts.Node, _ int) string {
		return n.Latency
	}))

	stats := make([]ClassStat, 0, len(latencies))
	for _, l := range latencies {
		members := lo.Filter(nodes, func(n hosts.Node, _ int) bool {
			return n.Latency == l
		})
		stats = append(stats, ClassStat{
			Latency: l,
			Count:   len(members),
			First:   members[0].Name,
			Last:    members[len(members)-1].Name,
		})
	}
	return stats
}

// WriteCSV writes stats as CSV with a header row.
func WriteCSV(w io.Writer, stats []ClassStat) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"latency", "count", "first", "last"}); err != nil {
		return err
	}
	for _, s := range stats {
		row := []string{s.Latency, strconv.Itoa(s.Count), s.First, s.Last}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
