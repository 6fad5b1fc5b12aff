package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/go-petr/coa-seeder/internal/domain"
)

const (
	numFields = 8
	colCode   = 0
	colNameAr = 1
	colNameEn = 2
	colType   = 3
	colGroup  = 4
	colParent = 5
	colDepth  = 6
	colTag    = 7
)

var header = []string{"code", "name_ar", "name_en", "type", "is_group", "parent_code", "depth", "tag"}

// ReadCSV reads account nodes from a catalog CSV with a header row.
func ReadCSV(r io.Reader) ([]domain.AccountNode, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading catalog CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	if !isHeader(records[0]) {
		return nil, fmt.Errorf("row 1: want header %q, got %q", header, records[0])
	}

	nodes := make([]domain.AccountNode, 0, len(records)-1)
	for i, rec := range records[1:] {
		node, err := unmarshalNode(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

// WriteCSV writes account nodes as a catalog CSV with a header row.
func WriteCSV(w io.Writer, nodes []domain.AccountNode) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, node := range nodes {
		if err := cw.Write(marshalNode(node)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// marshalNode converts a node to a CSV record.
func marshalNode(n domain.AccountNode) []string {
	rec := make([]string, numFields)
	rec[colCode] = n.Code
	rec[colNameAr] = n.NameAr
	rec[colNameEn] = n.NameEn
	rec[colType] = string(n.Type)
	rec[colGroup] = strconv.FormatBool(n.IsGroup)
	rec[colParent] = n.ParentCode
	rec[colDepth] = strconv.FormatInt(int64(n.Depth), 10)
	rec[colTag] = n.Tag

	return rec
}

// unmarshalNode parses a CSV record into a node.
func unmarshalNode(rec []string) (domain.AccountNode, error) {
	isGroup, err := strconv.ParseBool(rec[colGroup])
	if err != nil {
		return domain.AccountNode{}, fmt.Errorf("invalid is_group %q: %w", rec[colGroup], err)
	}

	depth, err := strconv.ParseInt(rec[colDepth], 10, 32)
	if err != nil {
		return domain.AccountNode{}, fmt.Errorf("invalid depth %q: %w", rec[colDepth], err)
	}

	return domain.AccountNode{
		Code:       rec[colCode],
		NameAr:     rec[colNameAr],
		NameEn:     rec[colNameEn],
		Type:       domain.AccountType(rec[colType]),
		IsGroup:    isGroup,
		ParentCode: rec[colParent],
		Depth:      int32(depth),
		Tag:        rec[colTag],
	}, nil
}

func isHeader(rec []string) bool {
	if len(rec) != len(header) {
		return false
	}

	for i := range header {
		if rec[i] != header[i] {
			return false
		}
	}

	return true
}
