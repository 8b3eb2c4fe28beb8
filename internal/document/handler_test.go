package document_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/adisakb/e-sarabun/internal"
	documentmodel "github.com/adisakb/e-sarabun/internal/core/datamodel/document"
	"github.com/adisakb/e-sarabun/internal/core/events"
	"github.com/adisakb/e-sarabun/internal/document"
	"github.com/adisakb/e-sarabun/internal/notification"
	"github.com/adisakb/e-sarabun/internal/storage"
	"github.com/adisakb/e-sarabun/internal/transport"
)

var _ = Describe("Document Handler Integration", func() {
	var (
		store        *storage.Store
		notifService *notification.Service
		handler      *document.Handler
	)

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&storage.Entry{})).To(Succeed())

		kv := storage.NewGormKV(db)
		store = storage.NewStore(kv, slogger)

		bus := events.NewEventBus(slogger)
		notifService = notification.NewService(store, slogger)
		notifService.RegisterEventHandlers(bus)

		service := document.NewService(store, bus, slogger)
		baseHandler := &transport.BaseHandler{Logger: slogger}
		handler = document.NewHandler(baseHandler, service)
	})

	It("lists the inbox book by default", func() {
		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		w := httptest.NewRecorder()

		handler.ListDocuments(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var resp document.DocumentsResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Total).To(Equal(2))
		for _, d := range resp.Documents {
			Expect(d.Type).To(Equal(documentmodel.TypeInbox))
		}
	})

	It("applies the keyword and status filters from the query", func() {
		req := httptest.NewRequest(http.MethodGet, "/documents?type=INBOX&search=ประชุม&status=PENDING", nil)
		w := httptest.NewRecorder()

		handler.ListDocuments(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var resp document.DocumentsResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Total).To(Equal(1))
		Expect(resp.Documents[0].Subject).To(ContainSubstring("ประชุม"))
	})

	It("rejects an unknown book", func() {
		req := httptest.NewRequest(http.MethodGet, "/documents?type=DRAFTS", nil)
		w := httptest.NewRecorder()

		handler.ListDocuments(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("registers a document and records the audit entry in lock-step", func() {
		dto := document.CreateDocumentDTO{
			RegisterNo: "รับ-099/2567",
			Subject:    "ทดสอบการลงทะเบียน",
			From:       "หน่วยทดสอบ",
			Date:       "2024-02-01",
			Type:       "INBOX",
			Category:   store.Categories()[0],
		}
		body, err := json.Marshal(dto)
		Expect(err).NotTo(HaveOccurred())

		req := httptest.NewRequest(http.MethodPost, "/documents", bytes.NewReader(body))
		req = req.WithContext(internal.ContextWithUser(req.Context(), "u1", "อดิศักดิ์", "ADMIN"))
		w := httptest.NewRecorder()

		handler.CreateDocument(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))

		var created documentmodel.Document
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		Expect(created.Owner).To(Equal("อดิศักดิ์"))
		Expect(created.Status).To(Equal(documentmodel.StatusPending))

		Expect(store.Documents()[0].ID).To(Equal(created.ID))
		Expect(notifService.Count()).To(Equal(1))
		Expect(notifService.List()[0].Subject).To(Equal("ทดสอบการลงทะเบียน"))
	})

	It("requires an authenticated user to register", func() {
		dto := document.CreateDocumentDTO{
			RegisterNo: "รับ-100/2567",
			Subject:    "ไม่มีผู้ใช้",
			Date:       "2024-02-01",
			Type:       "INBOX",
			Category:   store.Categories()[0],
		}
		body, _ := json.Marshal(dto)

		req := httptest.NewRequest(http.MethodPost, "/documents", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateDocument(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(notifService.Count()).To(BeZero())
	})
})
