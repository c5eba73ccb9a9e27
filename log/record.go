package log

import (
	"slices"
	"time"
)

// RootName is the name of every root logger.
const RootName = "root"

// Record is the structured payload produced by one passing log call and
// delivered to every attached [Transport].
//
// A Record is never modified after construction. Transports receive shared
// slices and must treat Data and Meta.ParentNames as read-only; use
// [Record.Clone] to obtain a private copy.
type Record struct {
	Msg  string `json:"msg"  yaml:"msg"`
	Data []any  `json:"data" yaml:"data"`
	Meta Meta   `json:"meta" yaml:"meta"`
}

// Meta describes where and when a Record was produced.
type Meta struct {
	Date        time.Time `json:"date"        yaml:"date"`
	LogLevel    Level     `json:"logLevel"    yaml:"logLevel"`
	Name        string    `json:"name"        yaml:"name"`
	ParentNames []string  `json:"parentNames" yaml:"parentNames"`
}

// newRecord copies data and parents so that later changes to the caller's
// slices are not observed by transports.
func newRecord(
	date time.Time,
	level Level,
	name string,
	parents []string,
	msg string,
	data []any,
) Record {
	return Record{
		Msg:  msg,
		Data: append(make([]any, 0, len(data)), data...),
		Meta: Meta{
			Date:        date,
			LogLevel:    level,
			Name:        name,
			ParentNames: append(make([]string, 0, len(parents)), parents...),
		},
	}
}

// Clone returns a copy of r with its own Data and ParentNames slices.
// The elements of Data are copied shallowly.
func (r Record) Clone() Record {
	r.Data = slices.Clone(r.Data)
	r.Meta.ParentNames = slices.Clone(r.Meta.ParentNames)

	if r.Data == nil {
		r.Data = []any{}
	}

	if r.Meta.ParentNames == nil {
		r.Meta.ParentNames = []string{}
	}

	return r
}

// Path returns the ancestor chain followed by the emitting logger's name.
func (r Record) Path() []string {
	return append(slices.Clone(r.Meta.ParentNames), r.Meta.Name)
}
