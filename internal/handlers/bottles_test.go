package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/cellarhub/winestore/api/v1"
	"github.com/cellarhub/winestore/internal/handlers"
	"github.com/cellarhub/winestore/internal/services"
	"github.com/cellarhub/winestore/internal/store"
)

var listColumns = []string{
	"BottleID", "WineName", "Producer", "Vintage", "Region",
	"PurchasePrice", "PurchaseDate", "Shelf", "Rack", "Cellar",
}

// newRouter wires a full handler stack over a sqlmock-backed gateway.
func newRouter() (*gin.Engine, sqlmock.Sqlmock, func()) {
	db, m, err := sqlmock.New()
	Expect(err).NotTo(HaveOccurred())

	gateway := store.NewGateway(db)
	handler := handlers.New(
		services.NewBottleService(gateway),
		services.NewStatisticsService(gateway),
		services.NewExportService(nil, nil, "", time.Second),
	)

	router := gin.New()
	handler.Register(router.Group("/api/v1"))
	return router, m, func() { db.Close() }
}

var _ = Describe("Bottle endpoints", func() {
	var (
		router  *gin.Engine
		mock    sqlmock.Sqlmock
		cleanup func()
	)

	BeforeEach(func() {
		router, mock, cleanup = newRouter()
	})

	AfterEach(func() {
		cleanup()
	})

	Describe("GET /api/v1/bottles", func() {
		It("returns the collection with display fields filled in", func() {
			purchased := time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)
			mock.ExpectQuery("SELECT wb.BottleID").
				WillReturnRows(sqlmock.NewRows(listColumns).
					AddRow(7, "Barolo", "Vietti", 2017, "Piedmont", 6500.0, purchased, "A", "2", "Main"))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bottles", nil)
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp v1.BottleListResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Total).To(Equal(1))
			Expect(resp.Bottles[0].Name).To(Equal("Barolo"))
			Expect(resp.Bottles[0].PurchaseDate).To(Equal("10.06.2023"))
			Expect(resp.Bottles[0].Status).To(Equal("in_storage"))
			Expect(resp.Bottles[0].SerialNumber).To(Equal("7"))
			Expect(resp.Bottles[0].VolumeMl).To(Equal(750))
		})

		It("passes search filters through to the store", func() {
			mock.ExpectQuery("LIKE").
				WithArgs("%barolo%", "%barolo%", "%barolo%", "Piedmont", 2015, 2020).
				WillReturnRows(sqlmock.NewRows(listColumns))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet,
				"/api/v1/bottles?term=Barolo&region=Piedmont&min_year=2015&max_year=2020", nil)
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("rejects a non-numeric year filter", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bottles?min_year=abc", nil)
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /api/v1/bottles", func() {
		It("stores the bottle and answers with the new id", func() {
			mock.ExpectBegin()
			mock.ExpectExec("INSERT INTO WineBottle").
				WillReturnResult(sqlmock.NewResult(42, 1))
			mock.ExpectExec("INSERT INTO WineLocation").
				WillReturnResult(sqlmock.NewResult(1, 1))
			mock.ExpectCommit()

			payload, _ := json.Marshal(map[string]any{
				"name": "Barolo", "producer": "Vietti", "vintage_year": 2017,
				"region": "Piedmont", "price": 6500.0, "shelf": "A",
			})
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bottles", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			var resp v1.CreatedResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Id).To(Equal(int64(42)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("rejects a malformed payload", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bottles",
				bytes.NewReader([]byte("{not json")))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /api/v1/bottles/:id", func() {
		It("answers 404 for an unknown bottle", func() {
			mock.ExpectBegin()
			mock.ExpectQuery("SELECT 1 FROM WineBottle").
				WillReturnRows(sqlmock.NewRows([]string{"1"}))
			mock.ExpectRollback()

			payload, _ := json.Marshal(map[string]any{"name": "Barolo"})
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/bottles/99", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("rejects a non-numeric id", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/bottles/abc",
				bytes.NewReader([]byte("{}")))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("DELETE /api/v1/bottles/:id", func() {
		It("removes the bottle and answers 204", func() {
			mock.ExpectBegin()
			mock.ExpectExec("DELETE FROM WineLocation").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec("DELETE FROM WineBottle").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/bottles/7", nil)
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("answers 404 for an unknown bottle", func() {
			mock.ExpectBegin()
			mock.ExpectExec("DELETE FROM WineLocation").
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectExec("DELETE FROM WineBottle").
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectRollback()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/bottles/99", nil)
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})
})

var _ = Describe("Statistics endpoint", func() {
	It("always answers 200, degrading to the empty shape", func() {
		router, _, cleanup := newRouter()
		cleanup() // closed store: statistics must still render

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/statistics", nil)
		router.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		var resp v1.StatisticsResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.TotalBottles).To(BeZero())
		Expect(resp.Regions).NotTo(BeNil())
	})
})
