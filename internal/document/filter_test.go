package document_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
	"github.com/adisakb/e-sarabun/internal/document"
)

var _ = Describe("Filter", func() {
	var docs []documentmodel.Document

	BeforeEach(func() {
		docs = []documentmodel.Document{
			{
				ID:         "d1",
				RegisterNo: "0003/2566",
				DocNo:      "ศธ 04001/999",
				Subject:    "ขอเชิญประชุมคณะกรรมการ",
				From:       "สำนักงานเขต",
				Type:       documentmodel.TypeInbox,
				Status:     documentmodel.StatusPending,
				Priority:   documentmodel.PriorityUrgent,
			},
			{
				ID:         "d2",
				RegisterNo: "0002/2566",
				Subject:    "แจ้งผลการพิจารณา",
				From:       "กรมบัญชีกลาง",
				Type:       documentmodel.TypeInbox,
				Status:     documentmodel.StatusInProcess,
				Priority:   documentmodel.PriorityNormal,
			},
			{
				ID:         "d3",
				RegisterNo: "0001/2566",
				Subject:    "ส่งรายงานประจำปี",
				From:       "ฝ่ายธุรการ",
				Type:       documentmodel.TypeOutbox,
				Status:     documentmodel.StatusCompleted,
				Priority:   documentmodel.PriorityNormal,
			},
		}
	})

	It("partitions by registry book before anything else", func() {
		inbox := document.Filter(docs, document.FilterParams{Type: documentmodel.TypeInbox})
		outbox := document.Filter(docs, document.FilterParams{Type: documentmodel.TypeOutbox})

		Expect(inbox).To(HaveLen(2))
		Expect(outbox).To(HaveLen(1))
		Expect(outbox[0].ID).To(Equal("d3"))
	})

	It("matches the keyword as a substring of the subject", func() {
		out := document.Filter(docs, document.FilterParams{
			Type:   documentmodel.TypeInbox,
			Search: "ประชุม",
		})

		Expect(out).To(HaveLen(1))
		Expect(out[0].ID).To(Equal("d1"))
	})

	It("matches the keyword against registerNo, docNo and from as well", func() {
		byRegisterNo := document.Filter(docs, document.FilterParams{
			Type:   documentmodel.TypeInbox,
			Search: "0002",
		})
		byDocNo := document.Filter(docs, document.FilterParams{
			Type:   documentmodel.TypeInbox,
			Search: "04001/999",
		})
		byFrom := document.Filter(docs, document.FilterParams{
			Type:   documentmodel.TypeInbox,
			Search: "บัญชีกลาง",
		})

		Expect(byRegisterNo).To(HaveLen(1))
		Expect(byRegisterNo[0].ID).To(Equal("d2"))
		Expect(byDocNo).To(HaveLen(1))
		Expect(byDocNo[0].ID).To(Equal("d1"))
		Expect(byFrom).To(HaveLen(1))
		Expect(byFrom[0].ID).To(Equal("d2"))
	})

	It("trims and case-folds the keyword", func() {
		docs = append(docs, documentmodel.Document{
			ID:      "d4",
			Subject: "Annual Report",
			Type:    documentmodel.TypeInbox,
		})

		out := document.Filter(docs, document.FilterParams{
			Type:   documentmodel.TypeInbox,
			Search: "  ANNUAL  ",
		})

		Expect(out).To(HaveLen(1))
		Expect(out[0].ID).To(Equal("d4"))
	})

	It("returns nothing for a keyword no document contains", func() {
		out := document.Filter(docs, document.FilterParams{
			Type:   documentmodel.TypeInbox,
			Search: "ไม่มีเอกสารนี้",
		})

		Expect(out).To(BeEmpty())
	})

	It("applies exact status match unless the ALL sentinel is used", func() {
		pending := document.Filter(docs, document.FilterParams{
			Type:   documentmodel.TypeInbox,
			Status: "PENDING",
		})
		all := document.Filter(docs, document.FilterParams{
			Type:   documentmodel.TypeInbox,
			Status: document.FilterAll,
		})

		Expect(pending).To(HaveLen(1))
		Expect(pending[0].ID).To(Equal("d1"))
		Expect(all).To(HaveLen(2))
	})

	It("composes keyword, status and priority by AND", func() {
		out := document.Filter(docs, document.FilterParams{
			Type:     documentmodel.TypeInbox,
			Search:   "2566",
			Status:   "PENDING",
			Priority: "URGENT",
		})

		Expect(out).To(HaveLen(1))
		Expect(out[0].ID).To(Equal("d1"))

		none := document.Filter(docs, document.FilterParams{
			Type:     documentmodel.TypeInbox,
			Search:   "2566",
			Status:   "PENDING",
			Priority: "NORMAL",
		})
		Expect(none).To(BeEmpty())
	})

	It("preserves the relative input order", func() {
		out := document.Filter(docs, document.FilterParams{Type: documentmodel.TypeInbox})

		Expect(out[0].ID).To(Equal("d1"))
		Expect(out[1].ID).To(Equal("d2"))
	})

	It("is idempotent", func() {
		params := document.FilterParams{Type: documentmodel.TypeInbox, Status: "PENDING"}

		once := document.Filter(docs, params)
		twice := document.Filter(once, params)

		Expect(twice).To(Equal(once))
	})

	It("never mutates the input", func() {
		document.Filter(docs, document.FilterParams{
			Type:   documentmodel.TypeInbox,
			Search: "ประชุม",
			Status: "PENDING",
		})

		Expect(docs).To(HaveLen(3))
		Expect(docs[0].ID).To(Equal("d1"))
		Expect(docs[2].ID).To(Equal("d3"))
	})
})
