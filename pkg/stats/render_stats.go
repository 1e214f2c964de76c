package stats

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats aggregates per-worker path statistics for a render
type RenderStats struct {
	PathCount   int
	SampleCount int
	PathLength  Population
	RenderTime  time.Duration
}

// Merge folds another worker's statistics into this one. Only the
// counts and length extremes merge exactly; mean and variance are
// recombined from the sums.
func (rs *RenderStats) Merge(other *RenderStats) {
	rs.PathCount += other.PathCount
	rs.SampleCount += other.SampleCount

	if other.PathLength.count > 0 {
		if rs.PathLength.count == 0 || other.PathLength.min < rs.PathLength.min {
			rs.PathLength.min = other.PathLength.min
		}
		if rs.PathLength.count == 0 || other.PathLength.max > rs.PathLength.max {
			rs.PathLength.max = other.PathLength.max
		}
		rs.PathLength.count += other.PathLength.count
		rs.PathLength.sum += other.PathLength.sum
		rs.PathLength.sqSum += other.PathLength.sqSum
	}
}

// Summary renders the statistics as a table suitable for logging
func (rs *RenderStats) Summary() string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Paths", "Samples", "Min length", "Max length", "Avg length", "Std dev"})
	table.Append([]string{
		fmt.Sprintf("%d", rs.PathCount),
		fmt.Sprintf("%d", rs.SampleCount),
		fmt.Sprintf("%.0f", rs.PathLength.Min()),
		fmt.Sprintf("%.0f", rs.PathLength.Max()),
		fmt.Sprintf("%.2f", rs.PathLength.Mean()),
		fmt.Sprintf("%.2f", rs.PathLength.StdDev()),
	})
	table.SetFooter([]string{"", "", "", "", "Render time", fmt.Sprintf("%s", rs.RenderTime)})
	table.Render()

	return buf.String()
}
