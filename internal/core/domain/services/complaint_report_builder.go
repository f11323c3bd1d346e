package services

import (
	"slices"
	"time"

	"logistics/internal/core/domain/model/complaint"
)

const (
	// Unassigned names the bucket of complaints lacking the grouped field.
	Unassigned = "Unassigned"

	latestLimit = 5
)

// Bucket is one row of a grouped count.
type Bucket struct {
	Name  string
	Count int
}

// ComplaintSummary is the content of a complaint report.
type ComplaintSummary struct {
	DateFrom time.Time
	DateTo   time.Time

	// Total counts the selected complaints. The status counts below cover
	// the whole date range, whatever the other filter criteria were.
	Total         int
	New           int
	InProgress    int
	WaitingReturn int
	Closed        int

	ByDepartment []Bucket
	ByType       []Bucket
	ByChannel    []Bucket

	// Latest holds up to five selected complaints, newest first.
	Latest []*complaint.Complaint

	// Complaints are the selected complaints in repository order.
	Complaints []*complaint.Complaint
}

// ComplaintReportBuilder summarizes complaints for the monthly report.
type ComplaintReportBuilder struct{}

func NewComplaintReportBuilder() ComplaintReportBuilder {
	return ComplaintReportBuilder{}
}

// Build groups selected in first-seen order. A complaint carrying several
// channel tags counts once per tag; one without tags counts as Unassigned.
func (ComplaintReportBuilder) Build(
	filter complaint.Filter,
	selected []*complaint.Complaint,
	statusCounts map[complaint.Status]int,
) (ComplaintSummary, error) {
	if err := filter.Validate(); err != nil {
		return ComplaintSummary{}, err
	}

	byDepartment := newCounter()
	byType := newCounter()
	byChannel := newCounter()

	for _, c := range selected {
		byDepartment.add(orUnassigned(c.Department()))

		if c.Type() == complaint.TypeNone {
			byType.add(Unassigned)
		} else {
			byType.add(c.Type().Label())
		}

		tags := c.ChannelTags()
		if len(tags) == 0 {
			byChannel.add(Unassigned)
		}
		for _, tag := range tags {
			byChannel.add(tag)
		}
	}

	return ComplaintSummary{
		DateFrom:      filter.DateFrom,
		DateTo:        filter.DateTo,
		Total:         len(selected),
		New:           statusCounts[complaint.StatusNew],
		InProgress:    statusCounts[complaint.StatusInProgress],
		WaitingReturn: statusCounts[complaint.StatusWaitingReturn],
		Closed:        statusCounts[complaint.StatusClosed],
		ByDepartment:  byDepartment.buckets,
		ByType:        byType.buckets,
		ByChannel:     byChannel.buckets,
		Latest:        latest(selected, latestLimit),
		Complaints:    selected,
	}, nil
}

func latest(complaints []*complaint.Complaint, n int) []*complaint.Complaint {
	sorted := slices.Clone(complaints)
	slices.SortStableFunc(sorted, func(a, b *complaint.Complaint) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

type counter struct {
	index   map[string]int
	buckets []Bucket
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(name string) {
	if i, ok := c.index[name]; ok {
		c.buckets[i].Count++
		return
	}
	c.index[name] = len(c.buckets)
	c.buckets = append(c.buckets, Bucket{Name: name, Count: 1})
}

func orUnassigned(s string) string {
	if s == "" {
		return Unassigned
	}
	return s
}
