package export

import (
	"os"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
	"github.com/yingtu35/url-scanner/internal/scanner"
)

type ResultRow struct {
	Index    string `csv:"Index"`
	URL      string `csv:"URL"`
	Status   string `csv:"Status"`
	Attempts string `csv:"Attempts"`
	Bytes    string `csv:"Bytes"`
	Title    string `csv:"Title"`
	Worker   string `csv:"Worker"`
}

type CSVExporter struct{}

func NewCSVExporter() Exporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(results []scanner.Result, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		logrus.Errorf("Error creating file %s: %v", filename, err)
		return err
	}
	defer file.Close()

	rows := e.transformData(results)

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		logrus.Errorf("Error exporting data to CSV: %v", err)
		return err
	}
	return nil
}

func (e *CSVExporter) transformData(results []scanner.Result) []ResultRow {
	rows := make([]ResultRow, 0, len(results))
	for i, r := range results {
		rows = append(rows, ResultRow{
			Index:    strconv.Itoa(i),
			URL:      r.URL,
			Status:   strconv.Itoa(r.StatusCode),
			Attempts: strconv.Itoa(r.Attempts),
			Bytes:    strconv.Itoa(len(r.Body)),
			Title:    PageTitle(r.Body),
			Worker:   strconv.Itoa(r.Worker),
		})
	}
	return rows
}
