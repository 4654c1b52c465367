// path: stats/stats_test.go
package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lostid/models"
)

func withReason(reason string) models.LostIDReport {
	return models.LostIDReport{Reason: reason, DateLost: "2024-01-01"}
}

func withDate(date string) models.LostIDReport {
	return models.LostIDReport{Reason: "Stolen", DateLost: date}
}

func TestReasonDistribution(t *testing.T) {
	reports := []models.LostIDReport{
		withReason("A"), withReason("A"), withReason("A"),
		withReason("B"),
	}

	got := ReasonDistribution(reports)
	require.Len(t, got, 2)
	assert.Equal(t, ReasonCount{Reason: "A", Count: 3, Percent: 75.0}, got[0])
	assert.Equal(t, ReasonCount{Reason: "B", Count: 1, Percent: 25.0}, got[1])
}

func TestReasonDistribution_RoundsToOneDecimal(t *testing.T) {
	reports := []models.LostIDReport{
		withReason("A"), withReason("A"), withReason("B"),
	}

	got := ReasonDistribution(reports)
	require.Len(t, got, 2)
	assert.Equal(t, 66.7, got[0].Percent)
	assert.Equal(t, 33.3, got[1].Percent)
}

func TestReasonDistribution_BlankReasonGroupsAsUnknown(t *testing.T) {
	reports := []models.LostIDReport{
		withReason(""), withReason("Stolen"), withReason(""),
	}

	got := ReasonDistribution(reports)
	require.Len(t, got, 2)
	assert.Equal(t, "Unknown", got[0].Reason)
	assert.Equal(t, 2, got[0].Count)
}

func TestCumulativeSeries_SortsByDateLost(t *testing.T) {
	reports := []models.LostIDReport{
		withDate("2024-01-01"),
		withDate("2024-01-03"),
		withDate("2024-01-02"),
	}

	got := CumulativeSeries(reports)
	require.Len(t, got, 3)
	assert.Equal(t, SeriesPoint{Date: "2024-01-01", Total: 1}, got[0])
	assert.Equal(t, SeriesPoint{Date: "2024-01-02", Total: 2}, got[1])
	assert.Equal(t, SeriesPoint{Date: "2024-01-03", Total: 3}, got[2])
}

func TestCumulativeSeries_TiesKeepInputOrder(t *testing.T) {
	a := models.LostIDReport{IDNumber: "1111111111111", Reason: "first", DateLost: "2024-01-01"}
	b := models.LostIDReport{IDNumber: "2222222222222", Reason: "second", DateLost: "2024-01-01"}

	got := CumulativeSeries([]models.LostIDReport{a, b})
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Total)
	assert.Equal(t, 2, got[1].Total)
}

func TestWeekdayHistogram(t *testing.T) {
	// 2024-01-01 is a Monday, 2024-01-06 a Saturday.
	reports := []models.LostIDReport{
		withDate("2024-01-01"),
		withDate("2024-01-08"),
		withDate("2024-01-06"),
	}

	got := WeekdayHistogram(reports)
	require.Len(t, got, 2)
	assert.Equal(t, WeekdayCount{Day: "Mon", Count: 2}, got[0])
	assert.Equal(t, WeekdayCount{Day: "Sat", Count: 1}, got[1])
}

func TestWeekdayHistogram_SkipsUnparseableDates(t *testing.T) {
	reports := []models.LostIDReport{
		withDate("2024-01-01"),
		withDate("not-a-date"),
	}

	got := WeekdayHistogram(reports)
	require.Len(t, got, 1)
	assert.Equal(t, "Mon", got[0].Day)
}

func TestEmptyRecordSetYieldsEmptyViews(t *testing.T) {
	assert.Empty(t, ReasonDistribution(nil))
	assert.Empty(t, CumulativeSeries(nil))
	assert.Empty(t, WeekdayHistogram(nil))

	assert.Empty(t, ReasonDistribution([]models.LostIDReport{}))
	assert.Empty(t, CumulativeSeries([]models.LostIDReport{}))
	assert.Empty(t, WeekdayHistogram([]models.LostIDReport{}))
}
