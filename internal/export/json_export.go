package export

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/yingtu35/url-scanner/internal/scanner"
)

type Record struct {
	Index    int    `json:"index"`
	URL      string `json:"url"`
	Status   int    `json:"status"`
	Attempts int    `json:"attempts"`
	Bytes    int    `json:"bytes"`
	Title    string `json:"title,omitempty"`
	Worker   int    `json:"worker"`
}

type JsonExporter struct{}

func NewJsonExporter() Exporter {
	return &JsonExporter{}
}

func (e *JsonExporter) Export(results []scanner.Result, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		logrus.Errorf("Error creating file %s: %v", filename, err)
		return err
	}
	defer file.Close()

	resultJson, err := json.MarshalIndent(e.transformData(results), "", "    ")
	if err != nil {
		logrus.Errorf("Error marshalling data: %v", err)
		return err
	}

	if _, err := file.Write(resultJson); err != nil {
		logrus.Errorf("Error exporting data to JSON: %v", err)
		return err
	}
	return nil
}

func (e *JsonExporter) transformData(results []scanner.Result) []Record {
	records := make([]Record, 0, len(results))
	for i, r := range results {
		records = append(records, Record{
			Index:    i,
			URL:      r.URL,
			Status:   r.StatusCode,
			Attempts: r.Attempts,
			Bytes:    len(r.Body),
			Title:    PageTitle(r.Body),
			Worker:   r.Worker,
		})
	}
	return records
}
