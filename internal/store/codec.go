package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/careerlab/internal/jobs"
)

// Header is the exact column order of the dataset file.
var Header = []string{
	"job_id",
	"title",
	"career_cluster",
	"company_name",
	"region",
	"city",
	"salary",
	"experience_level",
	"education_required",
	"technical_skills",
	"soft_skills",
	"preferred_traits",
	"work_arrangement",
	"company_size",
	"industry_growth",
	"posting_date",
	"applications_received",
	"job_views",
	"save_rate",
	"job_description",
}

const (
	listSeparator = ", "
	dateLayout    = "2006-01-02"
)

// ErrMissingColumn is returned when the file header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// CellError reports a cell that could not be decoded.
type CellError struct {
	Row    int // 1-based data row, excluding the header
	Column string
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %s: invalid value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// Encode writes postings as CSV with the dataset header.
func Encode(w io.Writer, postings []jobs.Posting) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range postings {
		if err := cw.Write(encodeRow(p)); err != nil {
			return fmt.Errorf("write job %d: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeRow(p jobs.Posting) []string {
	return []string{
		strconv.Itoa(p.ID),
		p.Title,
		p.Cluster,
		p.Company,
		p.Region,
		p.City,
		strconv.Itoa(p.Salary),
		p.ExperienceLevel,
		p.Education,
		strings.Join(p.TechnicalSkills, listSeparator),
		strings.Join(p.SoftSkills, listSeparator),
		strings.Join(p.PreferredTraits, listSeparator),
		p.WorkArrangement,
		p.CompanySize,
		p.IndustryGrowth,
		p.PostedAt.Format(dateLayout),
		strconv.Itoa(p.Applications),
		strconv.Itoa(p.Views),
		strconv.FormatFloat(p.SaveRate, 'f', -1, 64),
		p.Description,
	}
}

// Decode reads postings from CSV. Columns are located by header name, so
// extra or reordered columns are tolerated.
func Decode(r io.Reader) ([]jobs.Posting, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(head))
	for i, name := range head {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range Header {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var postings []jobs.Posting
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}

		d := rowDecoder{row: row, rec: rec, index: index}
		p := jobs.Posting{
			ID:              d.int("job_id"),
			Title:           d.str("title"),
			Cluster:         d.str("career_cluster"),
			Company:         d.str("company_name"),
			Region:          d.str("region"),
			City:            d.str("city"),
			Salary:          d.int("salary"),
			ExperienceLevel: d.str("experience_level"),
			Education:       d.str("education_required"),
			TechnicalSkills: d.list("technical_skills"),
			SoftSkills:      d.list("soft_skills"),
			PreferredTraits: d.list("preferred_traits"),
			WorkArrangement: d.str("work_arrangement"),
			CompanySize:     d.str("company_size"),
			IndustryGrowth:  d.str("industry_growth"),
			PostedAt:        d.date("posting_date"),
			Applications:    d.int("applications_received"),
			Views:           d.int("job_views"),
			SaveRate:        d.float("save_rate"),
			Description:     d.str("job_description"),
		}
		if d.err != nil {
			return nil, d.err
		}
		postings = append(postings, p)
	}
	return postings, nil
}

// rowDecoder decodes one record, keeping the first error.
type rowDecoder struct {
	row   int
	rec   []string
	index map[string]int
	err   error
}

func (d *rowDecoder) str(col string) string {
	i := d.index[col]
	if i >= len(d.rec) {
		return ""
	}
	return d.rec[i]
}

func (d *rowDecoder) fail(col, val string, err error) {
	if d.err == nil {
		d.err = &CellError{Row: d.row, Column: col, Value: val, Err: err}
	}
}

func (d *rowDecoder) int(col string) int {
	v := strings.TrimSpace(d.str(col))
	n, err := strconv.Atoi(v)
	if err != nil {
		d.fail(col, v, err)
		return 0
	}
	return n
}

func (d *rowDecoder) float(col string) float64 {
	v := strings.TrimSpace(d.str(col))
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		d.fail(col, v, err)
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		d.fail(col, v, errors.New("not a finite number"))
		return 0
	}
	return f
}

func (d *rowDecoder) date(col string) time.Time {
	v := strings.TrimSpace(d.str(col))
	t, err := time.ParseInLocation(dateLayout, v, time.Local)
	if err != nil {
		d.fail(col, v, err)
		return time.Time{}
	}
	return t
}

// list splits a joined list cell. Empty and "nan" cells decode as nil.
func (d *rowDecoder) list(col string) []string {
	v := strings.TrimSpace(d.str(col))
	if v == "" || strings.EqualFold(v, "nan") {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
