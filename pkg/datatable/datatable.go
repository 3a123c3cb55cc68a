// Package datatable implements the server-side half of the DataTables wire
// protocol: request parameters (draw/start/length/search/order) in, a
// draw/recordsTotal/recordsFiltered/data payload out. Repositories keep
// ownership of their SQL; this package only resolves paging and sorting.
package datatable

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	defaultLength = 10
	maxLength     = 500
)

type Params struct {
	Draw   int
	Start  int
	Length int
	Search string

	orderData string
	orderDir  string
}

// Parse reads DataTables query parameters. The order column index is resolved
// to the column's data name via the columns[i][data] parameters.
func Parse(q url.Values) Params {
	p := Params{
		Draw:   atoi(q.Get("draw"), 0),
		Start:  atoi(q.Get("start"), 0),
		Length: atoi(q.Get("length"), defaultLength),
		Search: q.Get("search[value]"),
	}
	if p.Start < 0 {
		p.Start = 0
	}
	if idx := q.Get("order[0][column]"); idx != "" {
		p.orderData = q.Get(fmt.Sprintf("columns[%s][data]", idx))
		if dir := q.Get("order[0][dir]"); dir == "asc" || dir == "desc" {
			p.orderDir = dir
		} else {
			p.orderDir = "asc"
		}
	}
	return p
}

// OrderClause returns an ORDER BY expression for the requested column, looked
// up in the allowed whitelist. Unknown or absent columns get the fallback.
func (p Params) OrderClause(allowed map[string]string, fallback string) string {
	if p.orderData != "" {
		if col, ok := allowed[p.orderData]; ok {
			return col + " " + p.orderDir
		}
	}
	return fallback
}

// Limit caps the page size; DataTables sends -1 for "all".
func (p Params) Limit() int {
	if p.Length <= 0 || p.Length > maxLength {
		return maxLength
	}
	return p.Length
}

func (p Params) Offset() int {
	return p.Start
}

type Response struct {
	Draw            int   `json:"draw"`
	RecordsTotal    int64 `json:"recordsTotal"`
	RecordsFiltered int64 `json:"recordsFiltered"`
	Data            any   `json:"data"`
}

func NewResponse(p Params, total, filtered int64, data any) *Response {
	return &Response{Draw: p.Draw, RecordsTotal: total, RecordsFiltered: filtered, Data: data}
}

func atoi(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
