package services_test

import (
	"context"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cellarhub/winestore/internal/services"
	"github.com/cellarhub/winestore/internal/store"
)

var _ = Describe("BottleService", func() {
	var (
		mock sqlmock.Sqlmock
		svc  *services.BottleService
	)

	listColumns := []string{
		"BottleID", "WineName", "Producer", "Vintage", "Region",
		"PurchasePrice", "PurchaseDate", "Shelf", "Rack", "Cellar",
	}

	newService := func() func() {
		conn, m, err := sqlmock.New()
		Expect(err).NotTo(HaveOccurred())
		mock = m
		svc = services.NewBottleService(store.NewGateway(conn))
		return func() { conn.Close() }
	}

	It("translates list parameters into store filters", func() {
		cleanup := newService()
		defer cleanup()

		mock.ExpectQuery("LIKE").
			WithArgs("%chianti%", "%chianti%", "%chianti%", "Tuscany", 2015, 2020).
			WillReturnRows(sqlmock.NewRows(listColumns).
				AddRow(1, "Chianti Classico", "Antinori", 2018, "Tuscany", 2500.0, nil, nil, nil, nil))

		rows, err := svc.List(context.Background(), services.BottleListParams{
			Term:    "Chianti",
			Region:  "Tuscany",
			MinYear: 2015,
			MaxYear: 2020,
			Order:   store.OrderNewestFirst,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(1))
		Expect(rows[0].Name).To(Equal("Chianti Classico"))
		Expect(mock.ExpectationsWereMet()).To(Succeed())
	})

	It("applies no filters for empty parameters", func() {
		cleanup := newService()
		defer cleanup()

		mock.ExpectQuery("ORDER BY wb.BottleID DESC").
			WillReturnRows(sqlmock.NewRows(listColumns))

		rows, err := svc.List(context.Background(), services.BottleListParams{
			Order: store.OrderNewestFirst,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(BeEmpty())
		Expect(mock.ExpectationsWereMet()).To(Succeed())
	})
})
