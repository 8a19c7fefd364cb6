package service

import (
	"academic_dashboard/internal/model"
	"academic_dashboard/internal/repository"
	"academic_dashboard/internal/util"
	"academic_dashboard/pkg/logger"
	"academic_dashboard/pkg/monitoring"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// DatasetStatus is what the teacher dashboard shows about the last import.
type DatasetStatus struct {
	Uploaded        bool   `json:"uploaded"`
	UploadTimestamp string `json:"uploadTimestamp,omitempty"`
	Students        int    `json:"students"`
}

type ImportResult struct {
	Students   int         `json:"students"`
	Rows       int         `json:"rows"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

type DatasetService struct {
	RecordRepo *repository.StudentRecordRepository
	Markers    *repository.MarkerRepository
	Activities *ActivityService
	Storage    *StorageService
}

func NewDatasetService(records *repository.StudentRecordRepository, markers *repository.MarkerRepository, activities *ActivityService, storage *StorageService) *DatasetService {
	return &DatasetService{
		RecordRepo: records,
		Markers:    markers,
		Activities: activities,
		Storage:    storage,
	}
}

// Import parses a .csv or .xlsx upload and replaces the whole dataset. The
// raw file is archived on a best effort basis.
func (s *DatasetService) Import(ctx context.Context, fileName string, r io.Reader) (*ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	records, rows, err := ParseDataset(fileName, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if err := s.RecordRepo.Replace(ctx, records); err != nil {
		return nil, err
	}
	if err := s.Markers.SetString(ctx, repository.KeyDatasetUploaded, "true"); err != nil {
		return nil, err
	}
	if err := s.Markers.SetString(ctx, repository.KeyUploadTimestamp, nowFunc().UTC().Format(time.RFC3339)); err != nil {
		return nil, err
	}

	result := &ImportResult{Students: len(records), Rows: rows}
	if s.Storage != nil {
		att, err := s.Storage.Save(ctx, "datasets", fileName, bytes.NewReader(data), int64(len(data)), datasetMime(fileName))
		if err != nil {
			logger.Log.Warn("failed to archive dataset file",
				zap.String("file", fileName),
				zap.Error(err),
			)
		} else {
			result.Attachment = att
		}
	}

	monitoring.DatasetRows.Set(float64(len(records)))
	s.Activities.Record(ctx, model.ActivityDataset,
		fmt.Sprintf("Uploaded performance dataset %s (%d students)", filepath.Base(fileName), len(records)))
	return result, nil
}

func (s *DatasetService) Status(ctx context.Context) (*DatasetStatus, error) {
	uploaded, _, err := s.Markers.String(ctx, repository.KeyDatasetUploaded)
	if err != nil {
		return nil, err
	}
	ts, _, err := s.Markers.String(ctx, repository.KeyUploadTimestamp)
	if err != nil {
		return nil, err
	}
	n, err := s.RecordRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &DatasetStatus{Uploaded: uploaded == "true", UploadTimestamp: ts, Students: n}, nil
}

func datasetMime(fileName string) string {
	if strings.EqualFold(filepath.Ext(fileName), ".xlsx") {
		return util.MimeXLSX
	}
	return util.MimeCSV
}

// ParseDataset reads the first sheet (or the CSV body) and groups rows by
// registration number and semester in first-seen order. It also returns the
// number of data rows read.
func ParseDataset(fileName string, r io.Reader) ([]model.StudentRecord, int, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		rows, err = readCSV(r)
	case ".xlsx":
		rows, err = readXLSX(r)
	default:
		return nil, 0, util.ErrUnsupportedFile
	}
	if err != nil {
		return nil, 0, err
	}
	return buildRecords(rows)
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, util.ErrEmptyDataset
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

const (
	colRegNo    = "regno"
	colSemester = "semester"
	colSubject  = "subject"
	colMarks    = "marks"
	colTotal    = "total"
	colOverall  = "overallpercentage"
)

var headerAliases = map[string]string{
	"regno":              colRegNo,
	"registrationnumber": colRegNo,
	"registernumber":     colRegNo,
	"semester":           colSemester,
	"sem":                colSemester,
	"subject":            colSubject,
	"marks":              colMarks,
	"total":              colTotal,
	"totalmarks":         colTotal,
	"overallpercentage":  colOverall,
	"overall":            colOverall,
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(" ", "", "_", "", "-", "", "\ufeff", "").Replace(h)
	return headerAliases[h]
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func buildRecords(rows [][]string) ([]model.StudentRecord, int, error) {
	if len(rows) == 0 {
		return nil, 0, util.ErrEmptyDataset
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		name := normalizeHeader(h)
		if _, dup := cols[name]; name != "" && !dup {
			cols[name] = i
		}
	}
	overallCol, ok := cols[colOverall]
	if !ok {
		overallCol = -1
	}
	for _, required := range []string{colRegNo, colSemester, colSubject, colMarks, colTotal} {
		if _, ok := cols[required]; !ok {
			return nil, 0, &util.ValidationError{Field: required, Rule: "missing column"}
		}
	}

	type groupKey struct{ regNo, semester string }
	index := map[groupKey]int{}
	records := []model.StudentRecord{}
	overallSet := map[int]bool{}
	count := 0

	for n, row := range rows[1:] {
		line := n + 2
		regNo, semester := cell(row, cols[colRegNo]), cell(row, cols[colSemester])
		subject := cell(row, cols[colSubject])
		if regNo == "" && semester == "" && subject == "" {
			continue
		}
		if regNo == "" || semester == "" || subject == "" {
			return nil, 0, &util.ValidationError{Field: "row", Rule: fmt.Sprintf("line %d is incomplete", line)}
		}

		marks, err := strconv.ParseFloat(cell(row, cols[colMarks]), 64)
		if err != nil {
			return nil, 0, &util.ValidationError{Field: colMarks, Rule: fmt.Sprintf("line %d is not a number", line)}
		}
		total, err := strconv.ParseFloat(cell(row, cols[colTotal]), 64)
		if err != nil {
			return nil, 0, &util.ValidationError{Field: colTotal, Rule: fmt.Sprintf("line %d is not a number", line)}
		}

		k := groupKey{regNo, semester}
		i, ok := index[k]
		if !ok {
			i = len(records)
			index[k] = i
			records = append(records, model.StudentRecord{RegNo: regNo, Semester: semester})
		}
		records[i].SubjectData = append(records[i].SubjectData, model.SubjectScore{Subject: subject, Marks: marks, Total: total})

		if raw := strings.TrimSuffix(cell(row, overallCol), "%"); raw != "" && !overallSet[i] {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				records[i].OverallPercentage = v
				overallSet[i] = true
			}
		}
		count++
	}

	if len(records) == 0 {
		return nil, 0, util.ErrEmptyDataset
	}
	for i := range records {
		if !overallSet[i] {
			records[i].OverallPercentage = round2(records[i].ComputeOverall())
		}
	}
	return records, count, nil
}
