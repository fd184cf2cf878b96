package provider

//go:generate curl -L -o network-provider.json https://raw.githubusercontent.com/musalbas/mcc-mnc-table/master/mcc-mnc-table.json

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
)

//go:embed network-provider.json
var networkProvider []byte

// Record describes one network provider entry of the dataset.
type Record struct {
	MCC         string `json:"mcc"`
	MNC         string `json:"mnc"`
	ISO         string `json:"iso"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	Network     string `json:"network"`
}

// Table is a read-only index of provider records keyed by MCC+MNC and by MCC.
// It is never mutated after construction.
type Table struct {
	byMccMnc map[string]Record
	byMcc    map[string]Record
	size     int
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := Load(bytes.NewReader(networkProvider))
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the table built from the bundled dataset.
func Default() *Table {
	return defaultTable()
}

// Load builds a table from a JSON array of records.
func Load(r io.Reader) (*Table, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode network providers: %w", err)
	}
	return NewTable(records), nil
}

// LoadFile builds a table from a dataset file on disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// NewTable indexes the given records. The first record seen for an MCC
// becomes the representative record of that country, and the first record
// seen for an MCC+MNC pair wins over later duplicates.
func NewTable(records []Record) *Table {
	t := &Table{
		byMccMnc: make(map[string]Record, len(records)),
		byMcc:    make(map[string]Record),
	}
	for _, r := range records {
		if r.MCC == "" {
			continue
		}
		if _, ok := t.byMcc[r.MCC]; !ok {
			t.byMcc[r.MCC] = r
		}
		if r.MNC == "" {
			continue
		}
		if _, ok := t.byMccMnc[key(r.MCC, r.MNC)]; !ok {
			t.byMccMnc[key(r.MCC, r.MNC)] = r
		}
	}
	t.size = len(t.byMccMnc)
	return t
}

func key(mcc, mnc string) string {
	return mcc + "/" + mnc
}

func (t *Table) LookupByMccMnc(mcc, mnc string) (Record, bool) {
	r, ok := t.byMccMnc[key(mcc, mnc)]
	return r, ok
}

func (t *Table) LookupByMcc(mcc string) (Record, bool) {
	r, ok := t.byMcc[mcc]
	return r, ok
}

// Len reports the number of distinct MCC+MNC entries.
func (t *Table) Len() int {
	return t.size
}

// Records returns the indexed MCC+MNC records ordered by MCC then MNC.
func (t *Table) Records() []Record {
	records := slices.Collect(maps.Values(t.byMccMnc))
	slices.SortFunc(records, func(a, b Record) int {
		return strings.Compare(key(a.MCC, a.MNC), key(b.MCC, b.MNC))
	})
	return records
}
