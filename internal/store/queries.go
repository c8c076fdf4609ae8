package store

// Schema queries
const (
	queryCreateBottleTable = `
		CREATE TABLE IF NOT EXISTS WineBottle (
			BottleID INT AUTO_INCREMENT PRIMARY KEY,
			WineName VARCHAR(255) NOT NULL DEFAULT '',
			Producer VARCHAR(255) NOT NULL DEFAULT '',
			Vintage INT NULL,
			Region VARCHAR(255) NOT NULL DEFAULT '',
			PurchasePrice DECIMAL(8,2) NULL,
			PurchaseDate DATE NULL
		)`

	queryCreateLocationTable = `
		CREATE TABLE IF NOT EXISTS WineLocation (
			LocationID INT AUTO_INCREMENT PRIMARY KEY,
			Shelf VARCHAR(100) NOT NULL DEFAULT '',
			Rack VARCHAR(100) NOT NULL DEFAULT '',
			Cellar VARCHAR(100) NOT NULL DEFAULT '',
			BottleID INT NOT NULL,
			Quantity INT NOT NULL DEFAULT 1,
			CONSTRAINT fk_location_bottle
				FOREIGN KEY (BottleID) REFERENCES WineBottle (BottleID)
		)`
)

// Bottle write queries
const (
	queryInsertBottle = `
		INSERT INTO WineBottle (WineName, Producer, Vintage, Region, PurchasePrice, PurchaseDate)
		VALUES (?, ?, ?, ?, ?, ?)`

	queryUpdateBottle = `
		UPDATE WineBottle
		SET WineName = ?, Producer = ?, Vintage = ?, Region = ?, PurchasePrice = ?, PurchaseDate = ?
		WHERE BottleID = ?`

	queryBottleExists = `SELECT 1 FROM WineBottle WHERE BottleID = ?`

	queryDeleteBottle = `DELETE FROM WineBottle WHERE BottleID = ?`

	queryInsertLocation = `
		INSERT INTO WineLocation (Shelf, Rack, Cellar, BottleID, Quantity)
		VALUES (?, ?, ?, ?, 1)`

	queryDeleteLocation = `DELETE FROM WineLocation WHERE BottleID = ?`
)

// Dashboard statistics queries
const (
	queryCountBottles = `SELECT COUNT(*) FROM WineBottle`

	querySumValue = `SELECT SUM(PurchasePrice) FROM WineBottle`

	queryRegionCounts = `
		SELECT Region, COUNT(*)
		FROM WineBottle
		WHERE Region IS NOT NULL AND Region != ''
		GROUP BY Region`

	queryVintageCounts = `
		SELECT Vintage, COUNT(*)
		FROM WineBottle
		WHERE Vintage IS NOT NULL
		GROUP BY Vintage
		ORDER BY Vintage`
)

// Export aggregate queries. The bucket labels must match the
// models.PriceBucket* constants.
const (
	queryRegionStats = `
		SELECT Region, COUNT(*) AS Count, AVG(PurchasePrice) AS AvgPrice,
		       SUM(PurchasePrice) AS TotalValue
		FROM WineBottle
		WHERE Region IS NOT NULL AND Region != ''
		GROUP BY Region
		ORDER BY Count DESC`

	queryVintageStats = `
		SELECT Vintage, COUNT(*) AS Count, AVG(PurchasePrice) AS AvgPrice
		FROM WineBottle
		WHERE Vintage IS NOT NULL
		GROUP BY Vintage
		ORDER BY Vintage DESC`

	queryPriceBuckets = `
		SELECT
			CASE
				WHEN PurchasePrice < 1000 THEN 'Under 1000'
				WHEN PurchasePrice BETWEEN 1000 AND 5000 THEN '1000-5000'
				WHEN PurchasePrice BETWEEN 5000 AND 10000 THEN '5000-10000'
				ELSE 'Over 10000'
			END AS PriceRange,
			COUNT(*) AS Count,
			SUM(PurchasePrice) AS TotalValue
		FROM WineBottle
		WHERE PurchasePrice IS NOT NULL
		GROUP BY PriceRange
		ORDER BY TotalValue DESC`

	queryProducerStats = `
		SELECT Producer, COUNT(*) AS Count, AVG(PurchasePrice) AS AvgPrice,
		       SUM(PurchasePrice) AS TotalValue
		FROM WineBottle
		WHERE Producer IS NOT NULL AND Producer != ''
		GROUP BY Producer
		HAVING COUNT(*) > 0
		ORDER BY Count DESC, AvgPrice DESC`
)
