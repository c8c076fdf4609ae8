package services_test

import (
	"context"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cellarhub/winestore/internal/services"
	"github.com/cellarhub/winestore/internal/store"
)

var _ = Describe("StatisticsService", func() {
	It("returns the computed dashboard aggregates", func() {
		db, mock, err := sqlmock.New()
		Expect(err).NotTo(HaveOccurred())
		defer db.Close()

		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"c"}).AddRow(2))
		mock.ExpectQuery("SELECT SUM").
			WillReturnRows(sqlmock.NewRows([]string{"s"}).AddRow(3000.0))
		mock.ExpectQuery("GROUP BY Region").
			WillReturnRows(sqlmock.NewRows([]string{"Region", "c"}).AddRow("Tuscany", 2))
		mock.ExpectQuery("GROUP BY Vintage").
			WillReturnRows(sqlmock.NewRows([]string{"Vintage", "c"}).AddRow(2018, 2))

		svc := services.NewStatisticsService(store.NewGateway(db))
		stats := svc.Dashboard(context.Background())

		Expect(stats.TotalBottles).To(Equal(2))
		Expect(stats.TotalValue).To(Equal(3000.0))
		Expect(stats.Regions).To(HaveKeyWithValue("Tuscany", 2))
	})

	It("degrades to empty statistics when the store is unreachable", func() {
		db, _, err := sqlmock.New()
		Expect(err).NotTo(HaveOccurred())
		db.Close()

		svc := services.NewStatisticsService(store.NewGateway(db))
		stats := svc.Dashboard(context.Background())

		Expect(stats).NotTo(BeNil())
		Expect(stats.TotalBottles).To(BeZero())
		Expect(stats.Regions).NotTo(BeNil())
		Expect(stats.Vintages).NotTo(BeNil())
	})
})
