package analytics_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/adisakb/e-sarabun/internal/analytics"
	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
)

func TestAnalytics(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Analytics Suite")
}

func sampleDocs() []documentmodel.Document {
	return []documentmodel.Document{
		{ID: "d1", Date: "2023-10-25", Type: documentmodel.TypeInbox, Status: documentmodel.StatusPending, Category: "หนังสือราชการ", Owner: "adisak"},
		{ID: "d2", Date: "2023-10-26", Type: documentmodel.TypeInbox, Status: documentmodel.StatusInProcess, Category: "หนังสือราชการ", Owner: "staff"},
		{ID: "d3", Date: "2023-10-27", Type: documentmodel.TypeOutbox, Status: documentmodel.StatusCompleted, Category: "คำสั่ง", Owner: "adisak"},
	}
}

var _ = Describe("Summarize", func() {
	It("tallies documents by book and status", func() {
		s := analytics.Summarize(sampleDocs())

		Expect(s.Total).To(Equal(3))
		Expect(s.InboxCount).To(Equal(2))
		Expect(s.OutboxCount).To(Equal(1))
		Expect(s.PendingCount).To(Equal(1))
		Expect(s.InProcessCount).To(Equal(1))
		Expect(s.CompletedCount).To(Equal(1))
		Expect(s.ReturnedCount).To(Equal(0))
	})

	It("returns all zeros for an empty registry", func() {
		s := analytics.Summarize(nil)

		Expect(s.Total).To(BeZero())
		Expect(s.InboxCount).To(BeZero())
	})
})

var _ = Describe("BuildTimeSeries", func() {
	It("creates buckets lazily, only for dates that occur", func() {
		ts := analytics.BuildTimeSeries(sampleDocs())

		Expect(ts.Daily).To(HaveLen(3))
		Expect(ts.Monthly).To(HaveLen(1))
		Expect(ts.Monthly[0].Label).To(Equal("2023-10"))
		Expect(ts.Yearly).To(HaveLen(1))
		Expect(ts.Yearly[0].Label).To(Equal("2023"))
	})

	It("orders labels lexicographically, which is chronological", func() {
		docs := []documentmodel.Document{
			{Date: "2024-02-01", Type: documentmodel.TypeInbox},
			{Date: "2023-11-30", Type: documentmodel.TypeInbox},
			{Date: "2024-01-15", Type: documentmodel.TypeOutbox},
		}

		ts := analytics.BuildTimeSeries(docs)

		Expect(ts.Daily[0].Label).To(Equal("2023-11-30"))
		Expect(ts.Daily[1].Label).To(Equal("2024-01-15"))
		Expect(ts.Daily[2].Label).To(Equal("2024-02-01"))
	})

	It("counts inbox and outbox separately within a bucket", func() {
		docs := []documentmodel.Document{
			{Date: "2023-10-25", Type: documentmodel.TypeInbox},
			{Date: "2023-10-25", Type: documentmodel.TypeInbox},
			{Date: "2023-10-25", Type: documentmodel.TypeOutbox},
		}

		ts := analytics.BuildTimeSeries(docs)

		Expect(ts.Daily).To(HaveLen(1))
		Expect(ts.Daily[0].Inbox).To(Equal(2))
		Expect(ts.Daily[0].Outbox).To(Equal(1))
	})

	It("conserves the document count across every granularity", func() {
		docs := sampleDocs()
		ts := analytics.BuildTimeSeries(docs)

		total := func(buckets []analytics.Bucket) int {
			n := 0
			for _, b := range buckets {
				n += b.Inbox + b.Outbox
			}
			return n
		}

		Expect(total(ts.Daily)).To(Equal(len(docs)))
		Expect(total(ts.Monthly)).To(Equal(len(docs)))
		Expect(total(ts.Yearly)).To(Equal(len(docs)))
	})

	It("returns empty series for an empty registry", func() {
		ts := analytics.BuildTimeSeries(nil)

		Expect(ts.Daily).To(BeEmpty())
		Expect(ts.Monthly).To(BeEmpty())
		Expect(ts.Yearly).To(BeEmpty())
	})
})

var _ = Describe("ComputeInsights", func() {
	It("derives average per day from distinct dates", func() {
		docs := []documentmodel.Document{
			{Date: "2023-10-25", Status: documentmodel.StatusCompleted},
			{Date: "2023-10-25", Status: documentmodel.StatusCompleted},
			{Date: "2023-10-26", Status: documentmodel.StatusCompleted},
			{Date: "2023-10-26", Status: documentmodel.StatusCompleted},
		}

		in := analytics.ComputeInsights(docs)

		Expect(in.TotalDocuments).To(Equal(4))
		Expect(in.DistinctDays).To(Equal(2))
		Expect(in.AveragePerDay).To(BeNumerically("==", 2.0))
	})

	It("computes the backlog rate from pending over total", func() {
		docs := []documentmodel.Document{
			{Date: "2023-10-25", Status: documentmodel.StatusPending},
			{Date: "2023-10-25", Status: documentmodel.StatusCompleted},
			{Date: "2023-10-25", Status: documentmodel.StatusCompleted},
			{Date: "2023-10-25", Status: documentmodel.StatusCompleted},
		}

		in := analytics.ComputeInsights(docs)

		Expect(in.BacklogRate).To(BeNumerically("~", 0.25, 1e-9))
		Expect(in.BacklogSeverity).To(Equal(analytics.SeverityModerate))
	})

	It("yields zero rates and no top values for an empty registry", func() {
		in := analytics.ComputeInsights(nil)

		Expect(in.TotalDocuments).To(BeZero())
		Expect(in.DistinctDays).To(BeZero())
		Expect(in.AveragePerDay).To(BeZero())
		Expect(in.BacklogRate).To(BeZero())
		Expect(in.BacklogSeverity).To(Equal(analytics.SeverityLow))
		Expect(in.TopCategory).To(BeEmpty())
		Expect(in.TopOwner).To(BeEmpty())
	})

	It("picks the most frequent category and owner", func() {
		in := analytics.ComputeInsights(sampleDocs())

		Expect(in.TopCategory).To(Equal("หนังสือราชการ"))
		Expect(in.TopOwner).To(Equal("adisak"))
	})

	It("breaks ties by the value that appeared first", func() {
		docs := []documentmodel.Document{
			{Date: "2023-10-25", Category: "คำสั่ง", Owner: "b"},
			{Date: "2023-10-25", Category: "ประกาศ", Owner: "a"},
			{Date: "2023-10-25", Category: "ประกาศ", Owner: "b"},
			{Date: "2023-10-25", Category: "คำสั่ง", Owner: "a"},
		}

		in := analytics.ComputeInsights(docs)

		Expect(in.TopCategory).To(Equal("คำสั่ง"))
		Expect(in.TopOwner).To(Equal("b"))
	})

	It("ignores documents with an empty category or owner", func() {
		docs := []documentmodel.Document{
			{Date: "2023-10-25", Category: "", Owner: ""},
			{Date: "2023-10-25", Category: "", Owner: ""},
			{Date: "2023-10-25", Category: "คำสั่ง", Owner: "a"},
		}

		in := analytics.ComputeInsights(docs)

		Expect(in.TopCategory).To(Equal("คำสั่ง"))
		Expect(in.TopOwner).To(Equal("a"))
	})
})

var _ = Describe("ClassifySeverity", func() {
	It("treats the 0.4 boundary as moderate, not high", func() {
		Expect(analytics.ClassifySeverity(0.4)).To(Equal(analytics.SeverityModerate))
		Expect(analytics.ClassifySeverity(0.41)).To(Equal(analytics.SeverityHigh))
	})

	It("treats the 0.2 boundary as low, not moderate", func() {
		Expect(analytics.ClassifySeverity(0.2)).To(Equal(analytics.SeverityLow))
		Expect(analytics.ClassifySeverity(0.21)).To(Equal(analytics.SeverityModerate))
	})

	It("labels zero as low", func() {
		Expect(analytics.ClassifySeverity(0)).To(Equal(analytics.SeverityLow))
	})
})
